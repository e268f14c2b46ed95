package bybit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hooktrader/internal/gateway/exchange"
)

// PlaceMarketOrder 提交市价单。响应原样返回（状态码 + body），
// 成功与否由调用方解读；传输层失败才返回 error。不重试。
func (c *Client) PlaceMarketOrder(ctx context.Context, side, symbol, qty string) (exchange.OrderResult, error) {
	params := map[string]string{
		"apiKey":      c.apiKey,
		"symbol":      symbol,
		"side":        strings.ToUpper(side),
		"orderType":   "Market",
		"qty":         qty,
		"timestamp":   timestampMs(time.Now()),
		"timeInForce": "GoodTillCancel",
	}
	params["sign"] = Sign(c.apiSecret, params)

	payload, err := json.Marshal(params)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderPath, bytes.NewReader(payload))
	if err != nil {
		return exchange.OrderResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return exchange.OrderResult{}, fmt.Errorf("order request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return exchange.OrderResult{}, fmt.Errorf("order response read: %w", err)
	}
	return exchange.OrderResult{StatusCode: resp.StatusCode, Body: body}, nil
}
