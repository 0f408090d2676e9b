package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	companyhandler "stock_api/internal/feature/companydetails/transport/handler"
	stockhandler "stock_api/internal/feature/stocks/transport/handler"
	tickerhandler "stock_api/internal/feature/tickers/transport/handler"
	"stock_api/internal/platform/config"
	"stock_api/internal/platform/http/handler"
	"stock_api/internal/platform/http/middleware"
	"stock_api/internal/platform/http/response"
)

// Handlers はルータに登録するフィーチャーごとのハンドラーです。
type Handlers struct {
	Tickers        *tickerhandler.TickerHandler
	Stocks         *stockhandler.StockHandler
	CompanyDetails *companyhandler.CompanyDetailHandler
}

// Deps はハンドラー以外にルータが必要とするものです。
type Deps struct {
	Server   config.ServerConfig
	Log      *zap.Logger
	DB       handler.Pinger       // /readyz の疎通確認先
	Registry *prometheus.Registry // nil なら /metrics を公開しない
}

func NewRouter(h Handlers, d Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery(), middleware.AccessLog(d.Log))
	if d.Server.MetricsEnabled && d.Registry != nil {
		r.Use(middleware.NewMetrics(d.Registry).Handler())
	}
	// ブラウザから直接叩く場合のみ有効にする
	if d.Server.CORSEnabled {
		r.Use(cors.Default())
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	// DBまで到達できるか
	r.GET("/readyz", handler.Ready(d.DB))
	if d.Server.MetricsEnabled && d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/get_tickers", h.Tickers.List)
	r.GET("/get_stocks", h.Stocks.List)
	r.GET("/get_company_details", h.CompanyDetails.List)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Error: "method not allowed"})
	})

	return r
}
