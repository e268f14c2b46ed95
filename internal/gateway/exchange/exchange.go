// Package exchange defines the gateway abstraction the webhook pipeline
// depends on, so handlers can be tested against fakes without network access.
package exchange

import "context"

type Exchange interface {
	Name() string

	// GetBalance returns the quote-asset amount available to trade on the
	// unified account. Zero with a nil error means the account is empty.
	GetBalance(ctx context.Context) (float64, error)

	// GetPrice returns the last traded price of the instrument.
	GetPrice(ctx context.Context, symbol string) (float64, error)

	// PlaceMarketOrder submits a signed market order and returns the raw
	// exchange response without interpreting it. Classifying the outcome is
	// the caller's job.
	PlaceMarketOrder(ctx context.Context, side, symbol, qty string) (OrderResult, error)
}

// OrderResult 保存交易所下单接口的原始应答。
type OrderResult struct {
	StatusCode int
	Body       []byte
}
