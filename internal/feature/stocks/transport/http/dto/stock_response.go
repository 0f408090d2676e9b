// Package dto defines data transfer objects for the stocks HTTP API.
package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"stock_api/internal/feature/stocks/domain/entity"
)

// StockBarResponse is one bar in the /get_stocks response.
// Prices are rendered as decimal strings so no precision is lost.
type StockBarResponse struct {
	TickerName string             `json:"tickerName"`
	Open       decimal.Decimal    `json:"open"`
	Close      decimal.Decimal    `json:"close"`
	High       decimal.Decimal    `json:"high"`
	Low        decimal.Decimal    `json:"low"`
	AdjClose   decimal.Decimal    `json:"adjclose"`
	Volume     int64              `json:"volume"`
	Date       openapi_types.Date `json:"date"`
}

// NewStockBarResponses converts bars to their response form. The result is never nil.
func NewStockBarResponses(bars []entity.StockBar) []StockBarResponse {
	out := make([]StockBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, StockBarResponse{
			TickerName: b.TickerName,
			Open:       b.Open,
			Close:      b.Close,
			High:       b.High,
			Low:        b.Low,
			AdjClose:   b.AdjClose,
			Volume:     b.Volume,
			Date:       openapi_types.Date{Time: b.Date},
		})
	}
	return out
}
