// Package alert models the inbound strategy webhook payload and the
// normalization of its free-text signal into a weighted order identifier.
package alert

import "strings"

// Alert 是 TradingView 告警的请求体。signal 可能内嵌方向与加仓步数
// （如 "ENTRY LONG STEP 1"），order_id 为显式覆盖值。
type Alert struct {
	Signal      string `json:"signal"`
	OrderAction string `json:"order_action"`
	OrderID     string `json:"order_id"`
}

// Action returns the normalized order action ("buy" / "sell" / "" ...).
func (a Alert) Action() string {
	return strings.ToLower(strings.TrimSpace(a.OrderAction))
}

// ResolveOrderID derives the order identifier used for weight lookup and
// deduplication. A signal containing the STEP token wins over the explicit
// order_id field: the trailing step number is prefixed with "Long " or
// "Short " according to the direction token. Signals with STEP but no
// direction fall back to the explicit order_id.
func (a Alert) ResolveOrderID() string {
	sig := strings.ToUpper(a.Signal)
	if strings.Contains(sig, "STEP") {
		parts := strings.Split(sig, "STEP")
		step := strings.TrimSpace(parts[len(parts)-1])
		switch {
		case strings.Contains(sig, "LONG"):
			return "Long " + step
		case strings.Contains(sig, "SHORT"):
			return "Short " + step
		}
	}
	return strings.TrimSpace(a.OrderID)
}
