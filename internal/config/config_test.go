package config

import (
	"os"
	"path/filepath"
	"testing"

	"hooktrader/internal/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
bybit:
  api_key: key
  api_secret: secret
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "https://api.bybit.com", cfg.Bybit.BaseURL)
	assert.Equal(t, 10, cfg.Bybit.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Bybit.PriceTimeoutSeconds)
	assert.Equal(t, "SOLUSDT.P", cfg.Trading.Symbol)
	assert.Equal(t, 3, cfg.Trading.Leverage)
	assert.InDelta(t, 0.0035, cfg.Trading.Slippage, 1e-9)
	assert.InDelta(t, 0.70, cfg.Trading.Weights["Long 1"], 1e-9)
	assert.InDelta(t, 0.40, cfg.Trading.Weights["Short 2"], 1e-9)
	assert.Equal(t, 300, cfg.Dedup.WindowSeconds)
}

func TestLoadSecretEnvOverride(t *testing.T) {
	t.Setenv("BYBIT_API_KEY", "env-key")
	t.Setenv("BYBIT_SECRET", "env-secret")
	path := writeConfigFile(t, `
app:
  http_addr: ":9000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Bybit.APIKey)
	assert.Equal(t, "env-secret", cfg.Bybit.APISecret)
	assert.Equal(t, ":9000", cfg.App.HTTPAddr)
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	path := writeConfigFile(t, `
app:
  env: prod
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bybit.api_key")
}

func TestLoadCustomWeightsReplaceDefaults(t *testing.T) {
	path := writeConfigFile(t, `
bybit:
  api_key: key
  api_secret: secret
trading:
  symbol: BTCUSDT
  leverage: 5
  weights:
    "Long 1": 0.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", cfg.Trading.Symbol)
	assert.Equal(t, 5, cfg.Trading.Leverage)
	assert.Len(t, cfg.Trading.Weights, 1)
	assert.InDelta(t, 0.5, cfg.Trading.Weights["Long 1"], 1e-9)
}

func TestLoadPreservesWeightKeyCase(t *testing.T) {
	// viper 会把 map key 小写化；权重表 key 大小写敏感，
	// 文件里的 "Long 1" 必须原样到达 Sizer，否则全部订单数量为 0。
	path := writeConfigFile(t, `
bybit:
  api_key: key
  api_secret: secret
trading:
  weights:
    "Long 1": 0.70
    "Short 2": 0.40
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Contains(t, cfg.Trading.Weights, "Long 1")
	require.NotContains(t, cfg.Trading.Weights, "long 1")

	s := sizing.New(cfg.Trading.Weights, cfg.Trading.Leverage, cfg.Trading.Slippage)
	assert.Equal(t, "20.927", s.Quantity("Long 1", 1000, 100).String())
	assert.Equal(t, "11.958", s.Quantity("Short 2", 1000, 100).String())
}

func TestLoadRejectsBadSlippage(t *testing.T) {
	path := writeConfigFile(t, `
bybit:
  api_key: key
  api_secret: secret
trading:
  slippage: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trading.slippage")
}
