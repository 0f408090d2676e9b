// Package schema は参照データベース（Tickers / Stocks / CompanyDetails）の明示的なスキーマ定義です。
// テーブル構造はこのサービスの外部で管理されており、ここでは読み取りに必要な列だけを宣言します。
package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Version は本パッケージが想定するスキーマのバージョンです。
// 列を追加・削除した場合はインクリメントすること。
const Version = 1

// テーブル名。外部スキーマの命名（PascalCase）をそのまま使用します。
const (
	TableTickers        = "Tickers"
	TableStocks         = "Stocks"
	TableCompanyDetails = "CompanyDetails"
)

// 列名。外部スキーマの命名（camelCase）をそのまま使用します。
const (
	ColTickerID          = "tickerId"
	ColTickerName        = "tickerName"
	ColStockMarket       = "stockMarket"
	ColDate              = "date"
	ColOpen              = "open"
	ColClose             = "close"
	ColHigh              = "high"
	ColLow               = "low"
	ColAdjClose          = "adjclose"
	ColVolume            = "volume"
	ColCompanyDetailsID  = "companyDetailsId"
	ColLongName          = "longName"
	ColSector            = "sector"
	ColIndustry          = "industry"
	ColCountry           = "country"
	ColCity              = "city"
	ColWebsite           = "website"
	ColFullTimeEmployees = "fullTimeEmployees"
	ColBusinessSummary   = "longBusinessSummary"
)

// TickerModel は Tickers テーブルの1行です。
type TickerModel struct {
	TickerID    int64  `gorm:"column:tickerId;primaryKey"`
	TickerName  string `gorm:"column:tickerName;size:32;not null;uniqueIndex"`
	StockMarket string `gorm:"column:stockMarket;size:64;not null"`
}

func (TickerModel) TableName() string {
	return TableTickers
}

// StockModel は Stocks テーブルの1行（日足1本）です。
// (tickerId, date) で一意になります。
type StockModel struct {
	TickerID int64           `gorm:"column:tickerId;primaryKey;autoIncrement:false"`
	Date     time.Time       `gorm:"column:date;type:date;primaryKey"`
	Open     decimal.Decimal `gorm:"column:open;type:numeric(18,6)"`
	Close    decimal.Decimal `gorm:"column:close;type:numeric(18,6)"`
	High     decimal.Decimal `gorm:"column:high;type:numeric(18,6)"`
	Low      decimal.Decimal `gorm:"column:low;type:numeric(18,6)"`
	AdjClose decimal.Decimal `gorm:"column:adjclose;type:numeric(18,6)"`
	Volume   int64           `gorm:"column:volume"`
}

func (StockModel) TableName() string {
	return TableStocks
}

// CompanyDetailModel は CompanyDetails テーブルの1行です。
// プロフィール属性はすべて NULL を許容します。
type CompanyDetailModel struct {
	CompanyDetailsID    int64   `gorm:"column:companyDetailsId;primaryKey"`
	TickerID            int64   `gorm:"column:tickerId;not null;index"`
	LongName            *string `gorm:"column:longName"`
	Sector              *string `gorm:"column:sector"`
	Industry            *string `gorm:"column:industry"`
	Country             *string `gorm:"column:country"`
	City                *string `gorm:"column:city"`
	Website             *string `gorm:"column:website"`
	FullTimeEmployees   *int64  `gorm:"column:fullTimeEmployees"`
	LongBusinessSummary *string `gorm:"column:longBusinessSummary"`
}

func (CompanyDetailModel) TableName() string {
	return TableCompanyDetails
}

// CompanyDetailColumns は CompanyDetails から公開する列を自然な列順で列挙します。
// 内部キー（tickerId, companyDetailsId）は含めません。
var CompanyDetailColumns = []string{
	ColLongName,
	ColSector,
	ColIndustry,
	ColCountry,
	ColCity,
	ColWebsite,
	ColFullTimeEmployees,
	ColBusinessSummary,
}

// Models はスキーマに含まれるすべてのモデルを返します。
func Models() []any {
	return []any{&TickerModel{}, &StockModel{}, &CompanyDetailModel{}}
}
