package bybit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignKnownVector(t *testing.T) {
	// HMAC-SHA256("secret", "a=1&b=2&c=3")
	sig := Sign("secret", map[string]string{"b": "2", "c": "3", "a": "1"})
	assert.Equal(t, "b03ed9eb27e72a055722c29ba8a106f54ab84f5a5e30b6ef6b51b54f316b5203", sig)
}

func TestSignBalanceParams(t *testing.T) {
	sig := Sign("secret", map[string]string{
		"apiKey":      "key",
		"timestamp":   "1700000000000",
		"accountType": "UNIFIED",
	})
	assert.Equal(t, "e2706a5aa250724c02a947ce544fcd43660ad7ea4557d7d2a67181c9500d442b", sig)
}

func TestSignIsOrderIndependent(t *testing.T) {
	params := map[string]string{
		"symbol":      "SOLUSDT.P",
		"side":        "BUY",
		"orderType":   "Market",
		"qty":         "20.927",
		"timestamp":   "1700000000000",
		"timeInForce": "GoodTillCancel",
		"apiKey":      "key",
	}
	// Maps iterate in random order; repeated calls must agree regardless.
	first := Sign("secret", params)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sign("secret", params))
	}

	reordered := make(map[string]string, len(params))
	for k, v := range params {
		reordered[k] = v
	}
	assert.Equal(t, first, Sign("secret", reordered))
}

func TestSignDiffersPerSecret(t *testing.T) {
	params := map[string]string{"a": "1"}
	assert.NotEqual(t, Sign("secret-1", params), Sign("secret-2", params))
}
