// Package dto defines data transfer objects for the tickers HTTP API.
package dto

// TickerResponse is one ticker in the /get_tickers response.
// The internal tickerId is not exposed.
type TickerResponse struct {
	TickerName  string `json:"tickerName"`
	StockMarket string `json:"stockMarket"`
}
