// Package entity defines the domain models for the companydetails feature.
package entity

// CompanyDetail is the descriptive profile of a ticker's issuing company.
// Every attribute is optional; nil means the column is NULL.
type CompanyDetail struct {
	TickerName          string
	LongName            *string
	Sector              *string
	Industry            *string
	Country             *string
	City                *string
	Website             *string
	FullTimeEmployees   *int64
	LongBusinessSummary *string
}
