package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stock_api/internal/platform/db/dbtest"
)

// TestBuildDSN_TCP はTCP接続用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN_TCP(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
	}

	dsn := BuildDSN(cfg)

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// TestBuildDSN_SSLMode は sslmode が指定された場合にそのまま使われることを検証します。
func TestBuildDSN_SSLMode(t *testing.T) {
	t.Parallel()

	cfg := Config{User: "u", Password: "p", Name: "d", Host: "db", Port: "5433", SSLMode: "require"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=require", BuildDSN(cfg))
}

// TestBuildDSN_CloudSQLTakesPrecedence はInstanceNameとHost/Portが両方設定されている場合にInstanceNameが優先されることを検証します。
func TestBuildDSN_CloudSQLTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:         "testuser",
		Password:     "testpass",
		Name:         "testdb",
		Host:         "localhost",
		Port:         "5432",
		InstanceName: "project:region:instance",
	}

	dsn := BuildDSN(cfg)

	expected := "host=/cloudsql/project:region:instance user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
	assert.NotContains(t, dsn, "port=")
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		assert.Equal(t, "test-dsn", dsn)
		return mockDB, nil
	}

	got, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, got)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// リトライ待ちで時間がかかるため並列にしない

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	got, err := ConnectWithRetry("test-dsn", 30*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, got)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後にエラーが返されることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.GreaterOrEqual(t, attempts, 1)
}

// TestConfigurePool はプール設定が sql.DB に反映されることを検証します。
func TestConfigurePool(t *testing.T) {
	t.Parallel()

	gdb := dbtest.OpenEmpty(t)

	err := ConfigurePool(gdb, Config{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
}

// TestClose は Close 後にクエリが失敗することを検証します。
func TestClose(t *testing.T) {
	t.Parallel()

	gdb := dbtest.OpenEmpty(t)

	require.NoError(t, Close(gdb))
	assert.Error(t, gdb.Exec("SELECT 1").Error)
}
