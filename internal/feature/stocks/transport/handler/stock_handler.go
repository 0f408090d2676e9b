// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock_api/internal/feature/stocks/domain/entity"
	"stock_api/internal/feature/stocks/transport/http/dto"
	"stock_api/internal/platform/http/response"
	"stock_api/internal/shared/queryparam"
)

// StockUsecase は日足一覧に関するユースケースのインターフェースです。
type StockUsecase interface {
	ListStockBars(ctx context.Context, f entity.StockBarFilter) ([]entity.StockBar, error)
}

// StockHandler は日足一覧に関するHTTPリクエストを処理します。
type StockHandler struct {
	uc  StockUsecase
	log *zap.Logger
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase, log *zap.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// List は日足の一覧を返します。
//
// エンドポイント例:
// GET /get_stocks?ticker_name=AAPL&stock_market_name=NASDAQ&starting_date=2023-01-01&ending_date=2023-01-31
func (h *StockHandler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	bars, err := h.uc.ListStockBars(c.Request.Context(), f)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockBarResponses(bars))
}

func parseFilter(c *gin.Context) (entity.StockBarFilter, error) {
	q := c.Request.URL.Query()

	var (
		f   entity.StockBarFilter
		err error
	)
	if f.TickerNames, err = queryparam.Strings(q, "ticker_name"); err != nil {
		return f, err
	}
	if f.StockMarkets, err = queryparam.Strings(q, "stock_market_name"); err != nil {
		return f, err
	}
	if f.From, err = queryparam.Date(q, "starting_date"); err != nil {
		return f, err
	}
	if f.To, err = queryparam.Date(q, "ending_date"); err != nil {
		return f, err
	}
	return f, nil
}
