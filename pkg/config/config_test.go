package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "invoices", cfg.Tables.Invoices)
	require.Equal(t, "usd", cfg.Billing.Currency)
	require.True(t, cfg.Billing.ApplicationFeePercent.Equal(decimal.NewFromInt(5)))
	require.Equal(t, 2*time.Minute, cfg.Billing.SettlementLockTTL)
	require.Empty(t, cfg.Kafka.Brokers)
}

func TestNew_EnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "HTTP_PORT=9090\nAPPLICATION_FEE_PERCENT=2.9\nKAFKA_BROKERS=k1:9092,k2:9092\nPAYMENT_GATEWAY_MOCK=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("INVOICES_TABLE", "invoices_test")
	t.Cleanup(func() {
		for _, k := range []string{"HTTP_PORT", "APPLICATION_FEE_PERCENT", "KAFKA_BROKERS", "PAYMENT_GATEWAY_MOCK"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := New(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.HTTP.Port)
	require.True(t, cfg.Billing.ApplicationFeePercent.Equal(decimal.RequireFromString("2.9")))
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.True(t, cfg.Stripe.MockMode)
	require.Equal(t, "invoices_test", cfg.Tables.Invoices)
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	_, err := New(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
