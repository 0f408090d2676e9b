// Package usecase implements the business logic for stock bar listings.
package usecase

import (
	"context"

	"stock_api/internal/feature/stocks/domain/entity"
)

// StockBarRepository abstracts the read side of the Stocks table joined with Tickers.
type StockBarRepository interface {
	// Find returns bars matching f, ordered by ticker then ascending date.
	// Each non-empty list in f is applied as its own IN filter.
	Find(ctx context.Context, f entity.StockBarFilter) ([]entity.StockBar, error)
}

// StockUsecase provides stock bar listings.
type StockUsecase struct {
	repo StockBarRepository
	// pairedMarketFilter applies the ticker and market filters only when both are given.
	pairedMarketFilter bool
}

// NewStockUsecase creates a new StockUsecase.
func NewStockUsecase(r StockBarRepository, pairedMarketFilter bool) *StockUsecase {
	return &StockUsecase{repo: r, pairedMarketFilter: pairedMarketFilter}
}

// ListStockBars returns the bars matching f.
func (u *StockUsecase) ListStockBars(ctx context.Context, f entity.StockBarFilter) ([]entity.StockBar, error) {
	if f.EmptyRange() {
		return []entity.StockBar{}, nil
	}
	if u.pairedMarketFilter && (len(f.TickerNames) == 0) != (len(f.StockMarkets) == 0) {
		f.TickerNames, f.StockMarkets = nil, nil
	}
	return u.repo.Find(ctx, f)
}
