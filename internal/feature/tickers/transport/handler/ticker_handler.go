// Package handler はtickersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock_api/internal/feature/tickers/domain/entity"
	"stock_api/internal/feature/tickers/transport/http/dto"
	"stock_api/internal/platform/http/response"
	"stock_api/internal/shared/queryparam"
)

// TickerUsecase は銘柄一覧に関するユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TickerUsecase interface {
	ListTickers(ctx context.Context, names []string) ([]entity.Ticker, error)
}

// TickerHandler は銘柄一覧に関するHTTPリクエストを処理します。
type TickerHandler struct {
	uc  TickerUsecase
	log *zap.Logger
}

// NewTickerHandler は新しい TickerHandler を作成します。
func NewTickerHandler(uc TickerUsecase, log *zap.Logger) *TickerHandler {
	return &TickerHandler{uc: uc, log: log}
}

// List は銘柄の一覧を返します。
//
// エンドポイント例:
// GET /get_tickers?ticker_name=AAPL&ticker_name=TSLA
func (h *TickerHandler) List(c *gin.Context) {
	names, err := queryparam.Strings(c.Request.URL.Query(), "ticker_name")
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	tickers, err := h.uc.ListTickers(c.Request.Context(), names)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	out := make([]dto.TickerResponse, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, dto.TickerResponse{TickerName: t.Name, StockMarket: t.Market})
	}
	c.JSON(http.StatusOK, out)
}
