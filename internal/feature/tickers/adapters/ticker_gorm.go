// Package adapters はtickersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_api/internal/feature/tickers/domain/entity"
	"stock_api/internal/feature/tickers/usecase"
	"stock_api/internal/shared/schema"
)

// tickerGorm はTickerRepositoryインターフェースのgorm実装です。
type tickerGorm struct {
	db *gorm.DB
}

var _ usecase.TickerRepository = (*tickerGorm)(nil)

// NewTickerRepository は指定されたDB接続でtickerGormリポジトリの新しいインスタンスを生成します。
func NewTickerRepository(db *gorm.DB) *tickerGorm {
	return &tickerGorm{db: db}
}

// Find は names に一致する銘柄を返します。names が空なら全件を返します。順序は保証しません。
func (r *tickerGorm) Find(ctx context.Context, names []string) ([]entity.Ticker, error) {
	q := r.db.WithContext(ctx).Model(&schema.TickerModel{})
	if len(names) > 0 {
		q = q.Where(clause.IN{
			Column: clause.Column{Table: schema.TableTickers, Name: schema.ColTickerName},
			Values: toValues(names),
		})
	}

	var rows []schema.TickerModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tickers: %w", err)
	}

	out := make([]entity.Ticker, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Ticker{ID: m.TickerID, Name: m.TickerName, Market: m.StockMarket})
	}
	return out, nil
}

func toValues(ss []string) []interface{} {
	vs := make([]interface{}, len(ss))
	for i, s := range ss {
		vs[i] = s
	}
	return vs
}
