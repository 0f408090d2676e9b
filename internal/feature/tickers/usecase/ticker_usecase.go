// Package usecase implements the business logic for ticker lookups.
package usecase

import (
	"context"

	"stock_api/internal/feature/tickers/domain/entity"
)

// TickerRepository abstracts the read side of the Tickers table.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TickerRepository interface {
	// Find returns the tickers whose name is in names, or every ticker when names is empty.
	Find(ctx context.Context, names []string) ([]entity.Ticker, error)
}

// TickerUsecase provides ticker lookups.
type TickerUsecase struct {
	repo TickerRepository
}

// NewTickerUsecase creates a new TickerUsecase with the given repository.
func NewTickerUsecase(r TickerRepository) *TickerUsecase {
	return &TickerUsecase{repo: r}
}

// ListTickers returns the tickers matching names exactly. No names means all tickers.
func (u *TickerUsecase) ListTickers(ctx context.Context, names []string) ([]entity.Ticker, error) {
	return u.repo.Find(ctx, dedupe(names))
}

// dedupe drops repeated names while keeping first-seen order.
func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
