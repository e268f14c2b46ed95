// Package sizing converts account balance into an order quantity using the
// per-identifier weight table, leverage, and a slippage buffer.
package sizing

import "github.com/shopspring/decimal"

// QtyPrecision 是交易所接受的数量小数位。
const QtyPrecision = 3

type Sizer struct {
	weights  map[string]float64
	leverage decimal.Decimal
	slipMul  decimal.Decimal // 1 + slippage
}

func New(weights map[string]float64, leverage int, slippage float64) *Sizer {
	w := make(map[string]float64, len(weights))
	for id, frac := range weights {
		w[id] = frac
	}
	return &Sizer{
		weights:  w,
		leverage: decimal.NewFromInt(int64(leverage)),
		slipMul:  decimal.NewFromInt(1).Add(decimal.NewFromFloat(slippage)),
	}
}

// Weight returns the configured balance fraction for an order identifier,
// zero when unrecognized.
func (s *Sizer) Weight(orderID string) float64 {
	return s.weights[orderID]
}

// Quantity 计算下单数量：balance * weight * leverage / (price * (1+slippage))，
// 四舍五入到 QtyPrecision 位。未知 order id 权重为 0，返回数量 0。
// 调用方保证 price > 0。
func (s *Sizer) Quantity(orderID string, balance, price float64) decimal.Decimal {
	weight := decimal.NewFromFloat(s.weights[orderID])
	notional := decimal.NewFromFloat(balance).Mul(weight).Mul(s.leverage)
	adjusted := notional.Div(decimal.NewFromFloat(price).Mul(s.slipMul))
	return adjusted.Round(QtyPrecision)
}
