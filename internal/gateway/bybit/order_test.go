package bybit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMarketOrderBuildsSignedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, orderPath, r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var params map[string]string
		require.NoError(t, json.Unmarshal(raw, &params))

		assert.Equal(t, "BUY", params["side"])
		assert.Equal(t, "SOLUSDT.P", params["symbol"])
		assert.Equal(t, "Market", params["orderType"])
		assert.Equal(t, "20.927", params["qty"])
		assert.Equal(t, "GoodTillCancel", params["timeInForce"])
		assert.NotEmpty(t, params["timestamp"])

		sig := params["sign"]
		delete(params, "sign")
		assert.Equal(t, Sign("secret", params), sig)

		w.Write([]byte(`{"retCode":0,"retMsg":"OK"}`))
	})

	res, err := c.PlaceMarketOrder(context.Background(), "buy", "SOLUSDT.P", "20.927")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"retCode":0,"retMsg":"OK"}`, string(res.Body))
}

func TestPlaceMarketOrderPassesThroughExchangeRejection(t *testing.T) {
	// Non-2xx responses are not an error at this layer; the handler decides.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"retCode":10001,"retMsg":"params error"}`))
	})

	res, err := c.PlaceMarketOrder(context.Background(), "sell", "SOLUSDT.P", "0")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, string(res.Body), "params error")
}

func TestPlaceMarketOrderTransportFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	c.baseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.PlaceMarketOrder(context.Background(), "buy", "SOLUSDT.P", "1")
	require.Error(t, err)
}
