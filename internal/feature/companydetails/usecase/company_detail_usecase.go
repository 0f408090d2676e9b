// Package usecase implements the business logic for company profile lookups.
package usecase

import (
	"context"

	"stock_api/internal/feature/companydetails/domain/entity"
)

// CompanyDetailRepository abstracts the read side of CompanyDetails joined with Tickers.
type CompanyDetailRepository interface {
	// Find returns the profiles of the tickers in names, or every profile when names is empty.
	Find(ctx context.Context, names []string) ([]entity.CompanyDetail, error)
}

// CompanyDetailUsecase provides company profile lookups.
type CompanyDetailUsecase struct {
	repo CompanyDetailRepository
}

// NewCompanyDetailUsecase creates a new CompanyDetailUsecase.
func NewCompanyDetailUsecase(r CompanyDetailRepository) *CompanyDetailUsecase {
	return &CompanyDetailUsecase{repo: r}
}

// ListCompanyDetails returns one profile per matching CompanyDetails row.
func (u *CompanyDetailUsecase) ListCompanyDetails(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
	return u.repo.Find(ctx, names)
}
