// Package response はAPI共通のエラーレスポンスを定義します。
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock_api/internal/platform/db"
	"stock_api/internal/shared/queryparam"
)

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error はエラーの種類に応じてステータスを決め、JSONで返します。
// パラメータ不正は400、それ以外（DBエラーなど）は500とし、500はログに残します。
func Error(c *gin.Context, log *zap.Logger, err error) {
	var pe *queryparam.Error
	if errors.As(err, &pe) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	log.Error("query failed",
		append(db.ErrorFields(err), zap.String("path", c.FullPath()))...,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
