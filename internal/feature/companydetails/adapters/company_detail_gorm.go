// Package adapters はcompanydetailsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_api/internal/feature/companydetails/domain/entity"
	"stock_api/internal/feature/companydetails/usecase"
	"stock_api/internal/shared/schema"
)

// companyDetailGorm はCompanyDetailRepositoryインターフェースのgorm実装です。
type companyDetailGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyDetailRepository = (*companyDetailGorm)(nil)

// NewCompanyDetailRepository は指定されたDB接続でcompanyDetailGormリポジトリの新しいインスタンスを生成します。
func NewCompanyDetailRepository(db *gorm.DB) *companyDetailGorm {
	return &companyDetailGorm{db: db}
}

// companyDetailRow は公開列と tickerName だけを持つ行です。内部キーは選択しません。
type companyDetailRow struct {
	LongName            *string `gorm:"column:longName"`
	Sector              *string `gorm:"column:sector"`
	Industry            *string `gorm:"column:industry"`
	Country             *string `gorm:"column:country"`
	City                *string `gorm:"column:city"`
	Website             *string `gorm:"column:website"`
	FullTimeEmployees   *int64  `gorm:"column:fullTimeEmployees"`
	LongBusinessSummary *string `gorm:"column:longBusinessSummary"`
	TickerName          string  `gorm:"column:tickerName"`
}

// selectColumns は schema.CompanyDetailColumns の順に並べ、最後に tickerName を加えます。
func selectColumns() []clause.Column {
	cols := make([]clause.Column, 0, len(schema.CompanyDetailColumns)+1)
	for _, name := range schema.CompanyDetailColumns {
		cols = append(cols, clause.Column{Table: schema.TableCompanyDetails, Name: name})
	}
	return append(cols, clause.Column{Table: schema.TableTickers, Name: schema.ColTickerName})
}

// Find は names に一致する銘柄の企業プロフィールを返します。names が空なら全件です。
func (r *companyDetailGorm) Find(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
	q := r.db.WithContext(ctx).
		Model(&schema.CompanyDetailModel{}).
		Clauses(clause.Select{Columns: selectColumns()}).
		Joins("JOIN ? ON ? = ?",
			clause.Table{Name: schema.TableTickers},
			clause.Column{Table: schema.TableCompanyDetails, Name: schema.ColTickerID},
			clause.Column{Table: schema.TableTickers, Name: schema.ColTickerID},
		)
	if len(names) > 0 {
		q = q.Where(clause.IN{
			Column: clause.Column{Table: schema.TableTickers, Name: schema.ColTickerName},
			Values: toValues(names),
		})
	}

	var rows []companyDetailRow
	err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Table: schema.TableCompanyDetails, Name: schema.ColCompanyDetailsID}}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list company details: %w", err)
	}

	out := make([]entity.CompanyDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.CompanyDetail{
			TickerName:          row.TickerName,
			LongName:            row.LongName,
			Sector:              row.Sector,
			Industry:            row.Industry,
			Country:             row.Country,
			City:                row.City,
			Website:             row.Website,
			FullTimeEmployees:   row.FullTimeEmployees,
			LongBusinessSummary: row.LongBusinessSummary,
		})
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
