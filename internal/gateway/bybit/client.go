// Package bybit 实现对 Bybit v5 REST 接口的最小封装：
// 钱包余额、最新成交价、市价下单。签名规则见 sign.go。
package bybit

import (
	"net/http"
	"strconv"
	"time"

	"hooktrader/internal/config"
)

const (
	balancePath = "/v5/account/wallet-balance"
	tickersPath = "/v5/market/tickers"
	orderPath   = "/v5/order/create"
)

type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string

	// 签名接口与公共行情接口使用不同的超时预算。
	http      *http.Client
	priceHTTP *http.Client
}

func NewClient(cfg config.BybitConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		http:      &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		priceHTTP: &http.Client{Timeout: time.Duration(cfg.PriceTimeoutSeconds) * time.Second},
	}
}

func (c *Client) Name() string { return "bybit" }

func timestampMs(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
