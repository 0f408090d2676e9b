// Package di provides dependency injection factories for creating application components.
package di

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	companyadapters "stock_api/internal/feature/companydetails/adapters"
	companyhandler "stock_api/internal/feature/companydetails/transport/handler"
	companyusecase "stock_api/internal/feature/companydetails/usecase"
	stockadapters "stock_api/internal/feature/stocks/adapters"
	stockhandler "stock_api/internal/feature/stocks/transport/handler"
	stockusecase "stock_api/internal/feature/stocks/usecase"
	tickeradapters "stock_api/internal/feature/tickers/adapters"
	tickerhandler "stock_api/internal/feature/tickers/transport/handler"
	tickerusecase "stock_api/internal/feature/tickers/usecase"
	"stock_api/internal/platform/config"
)

// NewTickerHandler wires the tickers repository, usecase and handler.
func NewTickerHandler(db *gorm.DB, log *zap.Logger) *tickerhandler.TickerHandler {
	repo := tickeradapters.NewTickerRepository(db)
	uc := tickerusecase.NewTickerUsecase(repo)
	return tickerhandler.NewTickerHandler(uc, log.Named("tickers"))
}

// NewStockHandler wires the stocks repository, usecase and handler.
func NewStockHandler(db *gorm.DB, cfg config.QueryConfig, log *zap.Logger) *stockhandler.StockHandler {
	repo := stockadapters.NewStockRepository(db)
	uc := stockusecase.NewStockUsecase(repo, cfg.PairedMarketFilter)
	return stockhandler.NewStockHandler(uc, log.Named("stocks"))
}

// NewCompanyDetailHandler wires the company details repository, usecase and handler.
func NewCompanyDetailHandler(db *gorm.DB, log *zap.Logger) *companyhandler.CompanyDetailHandler {
	repo := companyadapters.NewCompanyDetailRepository(db)
	uc := companyusecase.NewCompanyDetailUsecase(repo)
	return companyhandler.NewCompanyDetailHandler(uc, log.Named("companydetails"))
}
