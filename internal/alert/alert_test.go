package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrderID(t *testing.T) {
	cases := []struct {
		name  string
		alert Alert
		want  string
	}{
		{"long step", Alert{Signal: "ENTRY LONG STEP 1"}, "Long 1"},
		{"short step", Alert{Signal: "ENTRY SHORT STEP 3"}, "Short 3"},
		{"lowercase signal", Alert{Signal: "entry long step 2"}, "Long 2"},
		{"step without direction", Alert{Signal: "ENTRY STEP 1", OrderID: "Long 4"}, "Long 4"},
		{"no step falls back", Alert{Signal: "EXIT ALL", OrderID: "Short 2"}, "Short 2"},
		{"empty everything", Alert{}, ""},
		{"step token mid-signal", Alert{Signal: "STEP 4 ENTRY SHORT"}, "Short 4 ENTRY SHORT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.alert.ResolveOrderID())
		})
	}
}

func TestAction(t *testing.T) {
	assert.Equal(t, "buy", Alert{OrderAction: " Buy "}.Action())
	assert.Equal(t, "sell", Alert{OrderAction: "SELL"}.Action())
	assert.Equal(t, "", Alert{}.Action())
}
