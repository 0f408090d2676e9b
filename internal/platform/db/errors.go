package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrorFields はDBエラーをログ用のフィールドに変換します。
// PostgreSQLのエラーであれば SQLSTATE と対象テーブルを付与します。
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields,
			zap.String("sqlstate", pgErr.Code),
			zap.String("severity", pgErr.Severity),
		)
		if pgErr.TableName != "" {
			fields = append(fields, zap.String("table", pgErr.TableName))
		}
	}
	return fields
}
