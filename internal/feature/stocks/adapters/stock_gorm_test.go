package adapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stock_api/internal/feature/stocks/adapters"
	"stock_api/internal/feature/stocks/domain/entity"
	"stock_api/internal/platform/db/dbtest"
)

// seed はAAPL/TSLA（NASDAQ）と7203.T（TSE）の日足を作成します。
// TSLA を先に登録して、銘柄IDの順で並ぶことを確認できるようにします。
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	tsla := dbtest.SeedTicker(t, db, "TSLA", "NASDAQ")
	aapl := dbtest.SeedTicker(t, db, "AAPL", "NASDAQ")
	toyota := dbtest.SeedTicker(t, db, "7203.T", "TSE")

	dbtest.SeedBar(t, db, aapl.TickerID, dbtest.Date(2023, time.February, 1), "145.43", 300)
	dbtest.SeedBar(t, db, aapl.TickerID, dbtest.Date(2023, time.January, 3), "125.07", 100)
	dbtest.SeedBar(t, db, aapl.TickerID, dbtest.Date(2023, time.January, 31), "144.29", 200)
	dbtest.SeedBar(t, db, tsla.TickerID, dbtest.Date(2023, time.January, 3), "108.10", 400)
	dbtest.SeedBar(t, db, tsla.TickerID, dbtest.Date(2022, time.December, 30), "123.18", 500)
	dbtest.SeedBar(t, db, toyota.TickerID, dbtest.Date(2023, time.January, 4), "1800.5", 600)
}

type key struct {
	Ticker string
	Date   string
}

func keys(bars []entity.StockBar) []key {
	out := make([]key, 0, len(bars))
	for _, b := range bars {
		out = append(out, key{b.TickerName, b.Date.Format(time.DateOnly)})
	}
	return out
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := dbtest.Date(y, m, d)
	return &t
}

// TestStockRepository_Find はフィルタと並び順をテーブル駆動テストで検証します。
func TestStockRepository_Find(t *testing.T) {
	t.Parallel()

	db := dbtest.Open(t)
	seed(t, db)
	repo := adapters.NewStockRepository(db)

	tests := []struct {
		name   string
		filter entity.StockBarFilter
		want   []key
	}{
		{
			name:   "no filter returns all ordered by ticker id then date",
			filter: entity.StockBarFilter{},
			want: []key{
				{"TSLA", "2022-12-30"}, {"TSLA", "2023-01-03"},
				{"AAPL", "2023-01-03"}, {"AAPL", "2023-01-31"}, {"AAPL", "2023-02-01"},
				{"7203.T", "2023-01-04"},
			},
		},
		{
			name:   "inclusive date range",
			filter: entity.StockBarFilter{From: datePtr(2023, time.January, 1), To: datePtr(2023, time.January, 31)},
			want: []key{
				{"TSLA", "2023-01-03"},
				{"AAPL", "2023-01-03"}, {"AAPL", "2023-01-31"},
				{"7203.T", "2023-01-04"},
			},
		},
		{
			name:   "lower bound only",
			filter: entity.StockBarFilter{From: datePtr(2023, time.January, 31)},
			want:   []key{{"AAPL", "2023-01-31"}, {"AAPL", "2023-02-01"}},
		},
		{
			name:   "upper bound only",
			filter: entity.StockBarFilter{To: datePtr(2022, time.December, 30)},
			want:   []key{{"TSLA", "2022-12-30"}},
		},
		{
			name:   "ticker filter",
			filter: entity.StockBarFilter{TickerNames: []string{"AAPL"}},
			want:   []key{{"AAPL", "2023-01-03"}, {"AAPL", "2023-01-31"}, {"AAPL", "2023-02-01"}},
		},
		{
			name:   "market filter",
			filter: entity.StockBarFilter{StockMarkets: []string{"TSE"}},
			want:   []key{{"7203.T", "2023-01-04"}},
		},
		{
			name: "ticker and market filters are combined",
			filter: entity.StockBarFilter{
				TickerNames:  []string{"AAPL", "7203.T"},
				StockMarkets: []string{"NASDAQ"},
				From:         datePtr(2023, time.January, 1),
				To:           datePtr(2023, time.January, 31),
			},
			want: []key{{"AAPL", "2023-01-03"}, {"AAPL", "2023-01-31"}},
		},
		{
			name:   "no match",
			filter: entity.StockBarFilter{TickerNames: []string{"MSFT"}},
			want:   []key{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, keys(got))
		})
	}
}

// TestStockRepository_FindMapsPrices は価格と出来高が正しく写されることを検証します。
func TestStockRepository_FindMapsPrices(t *testing.T) {
	t.Parallel()

	db := dbtest.Open(t)
	aapl := dbtest.SeedTicker(t, db, "AAPL", "NASDAQ")
	dbtest.SeedBar(t, db, aapl.TickerID, dbtest.Date(2023, time.January, 3), "125.07", 112117500)

	got, err := adapters.NewStockRepository(db).Find(context.Background(), entity.StockBarFilter{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	b := got[0]
	assert.Equal(t, "AAPL", b.TickerName)
	assert.Equal(t, dbtest.Date(2023, time.January, 3), b.Date)
	assert.Equal(t, "124.07", b.Open.String())
	assert.Equal(t, "125.07", b.Close.String())
	assert.Equal(t, "127.07", b.High.String())
	assert.Equal(t, "123.07", b.Low.String())
	assert.Equal(t, "125.07", b.AdjClose.String())
	assert.Equal(t, int64(112117500), b.Volume)
}

// TestStockRepository_FindError はテーブルが無い場合にエラーを返すことを検証します。
func TestStockRepository_FindError(t *testing.T) {
	t.Parallel()

	db := dbtest.OpenEmpty(t)

	got, err := adapters.NewStockRepository(db).Find(context.Background(), entity.StockBarFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list stock bars")
	assert.Nil(t, got)
}
