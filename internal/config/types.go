package config

import "strings"

// Config 是 hooktrader 的主配置载体。
type Config struct {
	App     AppConfig     `toml:"app"`
	Bybit   BybitConfig   `toml:"bybit"`
	Trading TradingConfig `toml:"trading"`
	Notify  NotifyConfig  `toml:"notify"`
	Dedup   DedupConfig   `toml:"dedup"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	HTTPAddr string `toml:"http_addr"`
	LogPath  string `toml:"log_path"`
}

// BybitConfig 描述交易所 REST 访问方式。
// API key/secret 通常通过环境变量 BYBIT_API_KEY / BYBIT_SECRET 注入。
type BybitConfig struct {
	BaseURL             string `toml:"base_url"`
	APIKey              string `toml:"api_key"`
	APISecret           string `toml:"api_secret"`
	TimeoutSeconds      int    `toml:"timeout_seconds"`       // signed calls (balance, order)
	PriceTimeoutSeconds int    `toml:"price_timeout_seconds"` // public ticker call
}

// TradingConfig 控制下单标的与仓位换算参数。
type TradingConfig struct {
	Symbol   string             `toml:"symbol"`
	Leverage int                `toml:"leverage"`
	Slippage float64            `toml:"slippage"` // fractional, e.g. 0.0035
	Weights  map[string]float64 `toml:"weights"`  // order id -> fraction of balance
}

type NotifyConfig struct {
	Telegram TelegramConfig `toml:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool   `toml:"enabled"`
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
}

// DedupConfig 控制重复信号抑制的清理窗口。
// 抑制粒度固定为「同一 order id + 同一秒」，窗口只影响陈旧条目回收。
type DedupConfig struct {
	WindowSeconds int `toml:"window_seconds"`
}

// keySet 用于追踪配置文件中显式设置的字段路径。
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault 描述单个字段的默认值设置规则。
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
