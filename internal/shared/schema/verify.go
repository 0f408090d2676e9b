package schema

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// requirement は1テーブルについて存在を確認すべき列の集合です。
type requirement struct {
	model   any
	table   string
	columns []string
}

func requirements() []requirement {
	return []requirement{
		{
			model:   &TickerModel{},
			table:   TableTickers,
			columns: []string{ColTickerID, ColTickerName, ColStockMarket},
		},
		{
			model: &StockModel{},
			table: TableStocks,
			columns: []string{
				ColTickerID, ColDate, ColOpen, ColClose, ColHigh, ColLow, ColAdjClose, ColVolume,
			},
		},
		{
			model:   &CompanyDetailModel{},
			table:   TableCompanyDetails,
			columns: append([]string{ColTickerID}, CompanyDetailColumns...),
		},
	}
}

// MissingError は接続先データベースに存在しないテーブル・列の一覧を保持します。
type MissingError struct {
	Missing []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("schema v%d mismatch: missing %s", Version, strings.Join(e.Missing, ", "))
}

// Verify は読み取り対象のテーブルと列がすべて存在することを確認します。
// 不足がある場合は *MissingError を返します。
func Verify(db *gorm.DB) error {
	m := db.Migrator()

	var missing []string
	for _, req := range requirements() {
		if !m.HasTable(req.model) {
			missing = append(missing, req.table)
			continue
		}
		for _, col := range req.columns {
			if !m.HasColumn(req.model, col) {
				missing = append(missing, req.table+"."+col)
			}
		}
	}

	if len(missing) > 0 {
		return &MissingError{Missing: missing}
	}
	return nil
}
