// Package config はアプリケーション設定を .env・設定ファイル・環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"stock_api/internal/platform/db"
	"stock_api/internal/platform/logger"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	DB     db.Config     `mapstructure:"db"`
	Log    logger.Config `mapstructure:"log"`
	Query  QueryConfig   `mapstructure:"query"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin のモード（debug|release|test）
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSEnabled     bool          `mapstructure:"cors_enabled"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
}

// QueryConfig はクエリの振る舞いを切り替える設定です。
type QueryConfig struct {
	// PairedMarketFilter が true の場合、/get_stocks の銘柄・市場フィルタは
	// 両方が指定されたときだけ適用されます。
	PairedMarketFilter bool `mapstructure:"paired_market_filter"`
}

// Addr は http.Server に渡すリッスンアドレスです。
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_enabled", false)
	v.SetDefault("server.metrics_enabled", true)

	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.instance_connection_name", "")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.connect_timeout", "60s")
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("db.slow_threshold", "200ms")
	v.SetDefault("db.verify_schema", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 10)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("query.paired_market_filter", false)
}

// Load は設定を読み込みます。優先順位は 環境変数 > 設定ファイル > デフォルト です。
// path が空の場合は環境変数 CONFIG_FILE を参照し、それも空なら設定ファイルは読みません。
func Load(path string) (*Config, error) {
	// .env を読み込む（存在しなくてもよい）
	if err := godotenv.Load(".env"); err != nil {
		zap.L().Info(".env not found; using system environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = v.GetString("config_file")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は起動に必要な設定値を検証します。
func (c *Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Server.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 1-65535, got %q", c.Server.Port))
	}
	if c.DB.InstanceName == "" && c.DB.Host == "" {
		errs = append(errs, errors.New("db.host or db.instance_connection_name is required"))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("db.name is required"))
	}
	if c.DB.MaxOpenConns < 0 || c.DB.MaxIdleConns < 0 {
		errs = append(errs, errors.New("db pool sizes must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
