package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"delivery-dispatch/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, config.DefaultPort(), cfg.Port)
	require.Equal(t, config.DefaultDB(), cfg.DB)
	require.Equal(t, config.DefaultDispatch(), cfg.Dispatch)
	require.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "dispatch_prod")
	t.Setenv("DISPATCH_OPERATION_TIMEOUT", "5s")
	t.Setenv("DISPATCH_RECONCILE_INTERVAL", "1m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9091, cfg.Port)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "dispatch_prod", cfg.DB.Name)
	require.Equal(t, 5*time.Second, cfg.Dispatch.OperationTimeout)
	require.Equal(t, time.Minute, cfg.Dispatch.ReconcileInterval)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_GarbageEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("DISPATCH_OPERATION_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.DefaultDispatch().OperationTimeout, cfg.Dispatch.OperationTimeout)
	require.Equal(t, config.DefaultRateLimit().Burst, cfg.RateLimit.Burst)
}

func TestDB_DSN(t *testing.T) {
	db := config.DB{Host: "localhost", Port: "5432", User: "u", Pass: "p", Name: "d"}
	require.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", db.DSN())
}
