// Package entity defines the domain models for the tickers feature.
package entity

// Ticker is a tradable security identifier together with the market it is listed on.
type Ticker struct {
	ID     int64
	Name   string // e.g. "AAPL"
	Market string // e.g. "NASDAQ"
}
