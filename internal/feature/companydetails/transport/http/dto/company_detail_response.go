// Package dto defines data transfer objects for the company details HTTP API.
package dto

import "stock_api/internal/feature/companydetails/domain/entity"

// CompanyDetailResponse is one profile in the /get_company_details response.
// Fields follow the CompanyDetails column order with tickerName last; NULL renders as null.
type CompanyDetailResponse struct {
	LongName            *string `json:"longName"`
	Sector              *string `json:"sector"`
	Industry            *string `json:"industry"`
	Country             *string `json:"country"`
	City                *string `json:"city"`
	Website             *string `json:"website"`
	FullTimeEmployees   *int64  `json:"fullTimeEmployees"`
	LongBusinessSummary *string `json:"longBusinessSummary"`
	TickerName          string  `json:"tickerName"`
}

// NewCompanyDetailResponses converts profiles to their response form. The result is never nil.
func NewCompanyDetailResponses(details []entity.CompanyDetail) []CompanyDetailResponse {
	out := make([]CompanyDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, CompanyDetailResponse{
			LongName:            d.LongName,
			Sector:              d.Sector,
			Industry:            d.Industry,
			Country:             d.Country,
			City:                d.City,
			Website:             d.Website,
			FullTimeEmployees:   d.FullTimeEmployees,
			LongBusinessSummary: d.LongBusinessSummary,
			TickerName:          d.TickerName,
		})
	}
	return out
}
