// Package handler はcompanydetailsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock_api/internal/feature/companydetails/domain/entity"
	"stock_api/internal/feature/companydetails/transport/http/dto"
	"stock_api/internal/platform/http/response"
	"stock_api/internal/shared/queryparam"
)

// CompanyDetailUsecase は企業プロフィールに関するユースケースのインターフェースです。
type CompanyDetailUsecase interface {
	ListCompanyDetails(ctx context.Context, names []string) ([]entity.CompanyDetail, error)
}

// CompanyDetailHandler は企業プロフィールに関するHTTPリクエストを処理します。
type CompanyDetailHandler struct {
	uc  CompanyDetailUsecase
	log *zap.Logger
}

// NewCompanyDetailHandler は新しい CompanyDetailHandler を作成します。
func NewCompanyDetailHandler(uc CompanyDetailUsecase, log *zap.Logger) *CompanyDetailHandler {
	return &CompanyDetailHandler{uc: uc, log: log}
}

// List は企業プロフィールの一覧を返します。
//
// エンドポイント例:
// GET /get_company_details?ticker_name=AAPL
func (h *CompanyDetailHandler) List(c *gin.Context) {
	names, err := queryparam.Strings(c.Request.URL.Query(), "ticker_name")
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	details, err := h.uc.ListCompanyDetails(c.Request.Context(), names)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCompanyDetailResponses(details))
}
