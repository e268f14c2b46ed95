package config

import (
	"fmt"
	"strings"
)

// validate 对配置进行基础校验。
func validate(c *Config) error {
	if err := c.App.validate(); err != nil {
		return err
	}
	if err := c.Bybit.validate(); err != nil {
		return err
	}
	if err := c.Trading.validate(); err != nil {
		return err
	}
	if err := c.Notify.validate(); err != nil {
		return err
	}
	if err := c.Dedup.validate(); err != nil {
		return err
	}
	return nil
}

func (a AppConfig) validate() error {
	if strings.TrimSpace(a.HTTPAddr) == "" {
		return fmt.Errorf("app.http_addr cannot be empty")
	}
	return nil
}

func (b BybitConfig) validate() error {
	if strings.TrimSpace(b.BaseURL) == "" {
		return fmt.Errorf("bybit.base_url cannot be empty")
	}
	if strings.TrimSpace(b.APIKey) == "" || strings.TrimSpace(b.APISecret) == "" {
		return fmt.Errorf("bybit.api_key / bybit.api_secret must be set (config or BYBIT_API_KEY / BYBIT_SECRET env)")
	}
	if b.TimeoutSeconds <= 0 {
		return fmt.Errorf("bybit.timeout_seconds must be > 0")
	}
	if b.PriceTimeoutSeconds <= 0 {
		return fmt.Errorf("bybit.price_timeout_seconds must be > 0")
	}
	return nil
}

func (t TradingConfig) validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("trading.symbol cannot be empty")
	}
	if t.Leverage <= 0 {
		return fmt.Errorf("trading.leverage must be >= 1")
	}
	if t.Slippage < 0 || t.Slippage >= 1 {
		return fmt.Errorf("trading.slippage must be in [0, 1)")
	}
	for id, w := range t.Weights {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("trading.weights contains an empty order id")
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("trading.weights[%s] must be in [0, 1], got %v", id, w)
		}
	}
	return nil
}

func (n NotifyConfig) validate() error {
	tg := n.Telegram
	if tg.Enabled && (strings.TrimSpace(tg.BotToken) == "" || strings.TrimSpace(tg.ChatID) == "") {
		return fmt.Errorf("notify.telegram enabled but bot_token / chat_id missing")
	}
	return nil
}

func (d DedupConfig) validate() error {
	if d.WindowSeconds <= 0 {
		return fmt.Errorf("dedup.window_seconds must be > 0")
	}
	return nil
}
