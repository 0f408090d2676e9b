// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_api/internal/feature/stocks/domain/entity"
	"stock_api/internal/feature/stocks/usecase"
	"stock_api/internal/shared/schema"
)

// stockGorm はStockBarRepositoryインターフェースのgorm実装です。
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockBarRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// stockBarRow は Stocks と Tickers を結合した1行です。
type stockBarRow struct {
	TickerName string          `gorm:"column:tickerName"`
	Date       time.Time       `gorm:"column:date"`
	Open       decimal.Decimal `gorm:"column:open"`
	Close      decimal.Decimal `gorm:"column:close"`
	High       decimal.Decimal `gorm:"column:high"`
	Low        decimal.Decimal `gorm:"column:low"`
	AdjClose   decimal.Decimal `gorm:"column:adjclose"`
	Volume     int64           `gorm:"column:volume"`
}

func stocksCol(name string) clause.Column {
	return clause.Column{Table: schema.TableStocks, Name: name}
}

func tickersCol(name string) clause.Column {
	return clause.Column{Table: schema.TableTickers, Name: name}
}

// Find は条件に合う日足を銘柄ID、日付の昇順で返します。
func (r *stockGorm) Find(ctx context.Context, f entity.StockBarFilter) ([]entity.StockBar, error) {
	q := r.db.WithContext(ctx).
		Model(&schema.StockModel{}).
		Clauses(clause.Select{Columns: []clause.Column{
			tickersCol(schema.ColTickerName),
			stocksCol(schema.ColOpen),
			stocksCol(schema.ColClose),
			stocksCol(schema.ColHigh),
			stocksCol(schema.ColLow),
			stocksCol(schema.ColAdjClose),
			stocksCol(schema.ColVolume),
			stocksCol(schema.ColDate),
		}}).
		Joins("JOIN ? ON ? = ?",
			clause.Table{Name: schema.TableTickers},
			stocksCol(schema.ColTickerID),
			tickersCol(schema.ColTickerID),
		)

	if len(f.TickerNames) > 0 {
		q = q.Where(clause.IN{Column: tickersCol(schema.ColTickerName), Values: toValues(f.TickerNames)})
	}
	if len(f.StockMarkets) > 0 {
		q = q.Where(clause.IN{Column: tickersCol(schema.ColStockMarket), Values: toValues(f.StockMarkets)})
	}
	if f.From != nil {
		q = q.Where(clause.Gte{Column: stocksCol(schema.ColDate), Value: *f.From})
	}
	if f.To != nil {
		q = q.Where(clause.Lte{Column: stocksCol(schema.ColDate), Value: *f.To})
	}

	var rows []stockBarRow
	err := q.
		Order(clause.OrderByColumn{Column: tickersCol(schema.ColTickerID)}).
		Order(clause.OrderByColumn{Column: stocksCol(schema.ColDate)}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list stock bars: %w", err)
	}

	out := make([]entity.StockBar, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.StockBar{
			TickerName: row.TickerName,
			Date:       toUTCDate(row.Date),
			Open:       row.Open,
			Close:      row.Close,
			High:       row.High,
			Low:        row.Low,
			AdjClose:   row.AdjClose,
			Volume:     row.Volume,
		})
	}
	return out, nil
}

// toUTCDate はドライバが返すタイムゾーンに関わらず、暦日をUTCの0時にそろえます。
func toUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toValues(ss []string) []interface{} {
	vs := make([]interface{}, len(ss))
	for i, s := range ss {
		vs[i] = s
	}
	return vs
}
