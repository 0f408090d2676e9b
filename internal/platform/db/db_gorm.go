// Package db はPostgreSQLへのgorm接続（DSN生成・リトライ付き接続・プール設定）を提供します。
package db

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config はデータベース接続設定です。
type Config struct {
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	SSLMode      string `mapstructure:"sslmode"`
	InstanceName string `mapstructure:"instance_connection_name"` // Cloud SQL の接続名

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`

	LogLevel      string        `mapstructure:"log_level"` // silent|error|warn|info
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	VerifySchema  bool          `mapstructure:"verify_schema"`
}

// Opener はDSNからgorm接続を開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// retryInterval は接続リトライの初回待機時間です。
var retryInterval = 1 * time.Second

// BuildDSN は設定からPostgreSQLのキーワード形式DSNを生成します。
// InstanceName が設定されている場合はCloud SQLのUnixソケットを優先します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name, sslmode)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// ConnectWithRetry は timeout を上限に指数バックオフで接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInterval
	b.MaxElapsedTime = timeout
	b.Reset()

	var db *gorm.DB
	op := func() error {
		var err error
		db, err = open(dsn)
		return err
	}
	notify := func(err error, wait time.Duration) {
		zap.L().Warn("DB connect failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
	}
	return db, nil
}

// OpenDB は設定に従ってPostgreSQLへ接続し、コネクションプールを構成します。
func OpenDB(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:                 NewGormLogger(log, cfg.LogLevel, cfg.SlowThreshold),
		SkipDefaultTransaction: true,
	}
	opener := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), gcfg)
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}
	if err := ConfigurePool(db, cfg); err != nil {
		return nil, err
	}

	log.Info("DB connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return db, nil
}

// ConfigurePool は database/sql のプール上限を設定します。0 の項目は変更しません。
func ConfigurePool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get underlying sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return nil
}

// Close は下位の sql.DB を閉じます。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
