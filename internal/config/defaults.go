package config

import "strings"

// 默认值常量
const (
	defaultAppEnv             = "dev"
	defaultAppLogLevel        = "info"
	defaultAppHTTPAddr        = ":8080"
	defaultBybitBaseURL       = "https://api.bybit.com"
	defaultBybitTimeout       = 10
	defaultBybitPriceTimeout  = 5
	defaultTradingSymbol      = "SOLUSDT.P"
	defaultTradingLeverage    = 3
	defaultTradingSlippage    = 0.0035
	defaultDedupWindowSeconds = 300
)

// defaultWeights 是阶梯加仓的默认权重表（order id -> 余额占比）。
// 各条目彼此独立，总和不要求等于 1。
func defaultWeights() map[string]float64 {
	return map[string]float64{
		"Long 1":  0.70,
		"Long 2":  0.10,
		"Long 3":  0.10,
		"Long 4":  0.10,
		"Short 1": 0.30,
		"Short 2": 0.40,
		"Short 3": 0.20,
		"Short 4": 0.10,
	}
}

// applyDefaults 为所有子配置应用默认值。
func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.Bybit.applyDefaults(keys)
	c.Trading.applyDefaults(keys)
	c.Dedup.applyDefaults(keys)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	if a == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &a.Env, defaultAppEnv),
		stringFieldDefault("app.log_level", &a.LogLevel, defaultAppLogLevel),
		stringFieldDefault("app.http_addr", &a.HTTPAddr, defaultAppHTTPAddr),
	)
}

func (b *BybitConfig) applyDefaults(keys keySet) {
	if b == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("bybit.base_url", &b.BaseURL, defaultBybitBaseURL),
		fieldDefault{
			key:   "bybit.timeout_seconds",
			need:  func() bool { return b.TimeoutSeconds <= 0 },
			apply: func() { b.TimeoutSeconds = defaultBybitTimeout },
		},
		fieldDefault{
			key:   "bybit.price_timeout_seconds",
			need:  func() bool { return b.PriceTimeoutSeconds <= 0 },
			apply: func() { b.PriceTimeoutSeconds = defaultBybitPriceTimeout },
		},
	)
}

func (t *TradingConfig) applyDefaults(keys keySet) {
	if t == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("trading.symbol", &t.Symbol, defaultTradingSymbol),
		fieldDefault{
			key:   "trading.leverage",
			need:  func() bool { return t.Leverage <= 0 },
			apply: func() { t.Leverage = defaultTradingLeverage },
		},
		fieldDefault{
			key:   "trading.slippage",
			need:  func() bool { return t.Slippage <= 0 },
			apply: func() { t.Slippage = defaultTradingSlippage },
		},
	)
	if len(t.Weights) == 0 {
		t.Weights = defaultWeights()
	}
}

func (d *DedupConfig) applyDefaults(keys keySet) {
	if d == nil {
		return
	}
	applyFieldDefaults(keys,
		fieldDefault{
			key:   "dedup.window_seconds",
			need:  func() bool { return d.WindowSeconds <= 0 },
			apply: func() { d.WindowSeconds = defaultDedupWindowSeconds },
		},
	)
}

// Helper functions

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
