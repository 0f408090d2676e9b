package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"stock_api/internal/feature/companydetails/domain/entity"
	"stock_api/internal/feature/companydetails/transport/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockCompanyDetailUsecase struct {
	ListFunc func(ctx context.Context, names []string) ([]entity.CompanyDetail, error)
}

func (m *mockCompanyDetailUsecase) ListCompanyDetails(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
	return m.ListFunc(ctx, names)
}

func serve(h *handler.CompanyDetailHandler, url string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/get_company_details", h.List)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

// TestCompanyDetailHandler_List は列順・NULL・内部キー非公開を検証します。
func TestCompanyDetailHandler_List(t *testing.T) {
	t.Parallel()

	employees := int64(127855)
	uc := &mockCompanyDetailUsecase{
		ListFunc: func(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
			assert.Equal(t, []string{"TSLA"}, names)
			name := "Tesla, Inc."
			return []entity.CompanyDetail{{TickerName: "TSLA", LongName: &name, FullTimeEmployees: &employees}}, nil
		},
	}

	w := serve(handler.NewCompanyDetailHandler(uc, zap.NewNop()), "/get_company_details?ticker_name=TSLA")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t,
		`[{"longName":"Tesla, Inc.","sector":null,"industry":null,"country":null,"city":null,"website":null,`+
			`"fullTimeEmployees":127855,"longBusinessSummary":null,"tickerName":"TSLA"}]`,
		body)
	assert.NotContains(t, body, "tickerId")
	assert.NotContains(t, body, "companyDetailsId")
}

func TestCompanyDetailHandler_ListEmpty(t *testing.T) {
	t.Parallel()

	uc := &mockCompanyDetailUsecase{
		ListFunc: func(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
			return nil, nil
		},
	}

	w := serve(handler.NewCompanyDetailHandler(uc, zap.NewNop()), "/get_company_details")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// TestCompanyDetailHandler_ListError はDBエラー時に500を返し、ログに残すことを検証します。
func TestCompanyDetailHandler_ListError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	uc := &mockCompanyDetailUsecase{
		ListFunc: func(ctx context.Context, names []string) ([]entity.CompanyDetail, error) {
			return nil, errors.New("list company details: sql: database is closed")
		},
	}

	w := serve(handler.NewCompanyDetailHandler(uc, zap.New(core)), "/get_company_details")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"list company details: sql: database is closed"}`, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/get_company_details", logs.All()[0].ContextMap()["path"])
}
