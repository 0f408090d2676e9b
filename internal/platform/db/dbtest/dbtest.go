// Package dbtest はテスト用のインメモリSQLiteデータベースとシード関数を提供します。
package dbtest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stock_api/internal/shared/schema"
)

// Open はスキーマを作成済みのインメモリSQLiteデータベースを返します。
// ":memory:" は接続ごとに別のDBになるため、接続数を1に固定します。
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenEmpty(t)
	require.NoError(t, db.AutoMigrate(schema.Models()...), "failed to migrate schema")
	return db
}

// OpenEmpty はテーブルを持たないインメモリSQLiteデータベースを返します。
func OpenEmpty(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// SeedTicker は銘柄を1件作成します。
func SeedTicker(t *testing.T, db *gorm.DB, name, market string) *schema.TickerModel {
	t.Helper()

	m := &schema.TickerModel{TickerName: name, StockMarket: market}
	require.NoError(t, db.Create(m).Error, "failed to seed ticker")
	return m
}

// SeedBar は日足を1本作成します。価格は close を基準に決まった幅で埋めます。
func SeedBar(t *testing.T, db *gorm.DB, tickerID int64, date time.Time, closePrice string, volume int64) *schema.StockModel {
	t.Helper()

	c := decimal.RequireFromString(closePrice)
	m := &schema.StockModel{
		TickerID: tickerID,
		Date:     date,
		Open:     c.Sub(decimal.NewFromInt(1)),
		Close:    c,
		High:     c.Add(decimal.NewFromInt(2)),
		Low:      c.Sub(decimal.NewFromInt(2)),
		AdjClose: c,
		Volume:   volume,
	}
	require.NoError(t, db.Create(m).Error, "failed to seed stock bar")
	return m
}

// SeedCompanyDetail は企業プロフィールを1件作成します。
func SeedCompanyDetail(t *testing.T, db *gorm.DB, m *schema.CompanyDetailModel) *schema.CompanyDetailModel {
	t.Helper()

	require.NoError(t, db.Create(m).Error, "failed to seed company detail")
	return m
}

// Date はUTCの日付を返します。
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ptr は値のポインタを返します。
func Ptr[T any](v T) *T {
	return &v
}
