package bybit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// GetBalance 查询统一账户中 USDT 的可交易余额。
// 单次请求，失败不重试；任何网络或解析错误都以 error 返回，
// 由调用方决定放弃本次下单。
func (c *Client) GetBalance(ctx context.Context) (float64, error) {
	params := map[string]string{
		"apiKey":      c.apiKey,
		"timestamp":   timestampMs(time.Now()),
		"accountType": "UNIFIED",
	}
	params["sign"] = Sign(c.apiSecret, params)

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+balancePath+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("wallet balance request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("wallet balance http %d: %s", resp.StatusCode, string(body))
	}

	coins := gjson.GetBytes(body, "result.list.0.coin")
	if !coins.IsArray() {
		return 0, fmt.Errorf("wallet balance: unexpected response shape")
	}
	for _, coin := range coins.Array() {
		if coin.Get("coin").String() == "USDT" {
			return coin.Get("availableToTrade").Float(), nil
		}
	}
	return 0, fmt.Errorf("wallet balance: no USDT entry in coin list")
}

// GetPrice 查询合约最新成交价（公共接口，无需签名）。
func (c *Client) GetPrice(ctx context.Context, symbol string) (float64, error) {
	u := fmt.Sprintf("%s%s?category=linear&symbol=%s", c.baseURL, tickersPath, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.priceHTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ticker request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("ticker http %d: %s", resp.StatusCode, string(body))
	}

	last := gjson.GetBytes(body, "result.list.0.lastPrice")
	price := last.Float()
	if !last.Exists() || price <= 0 {
		return 0, fmt.Errorf("ticker: missing or non-positive lastPrice for %s", symbol)
	}
	return price, nil
}
