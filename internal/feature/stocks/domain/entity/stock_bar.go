// Package entity defines the domain models for the stocks feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBar is one daily OHLCV bar of a ticker.
type StockBar struct {
	TickerName string
	Date       time.Time // UTC midnight
	Open       decimal.Decimal
	Close      decimal.Decimal
	High       decimal.Decimal
	Low        decimal.Decimal
	AdjClose   decimal.Decimal
	Volume     int64
}

// StockBarFilter narrows a stock bar listing. Zero values mean "no constraint".
type StockBarFilter struct {
	TickerNames  []string
	StockMarkets []string
	From         *time.Time // inclusive
	To           *time.Time // inclusive
}

// EmptyRange reports whether both bounds are set and From is after To.
func (f StockBarFilter) EmptyRange() bool {
	return f.From != nil && f.To != nil && f.From.After(*f.To)
}
