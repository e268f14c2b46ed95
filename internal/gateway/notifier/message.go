package notifier

import (
	"fmt"
	"strings"
	"time"
)

// OrderFilled 描述一笔已提交订单的推送内容。
type OrderFilled struct {
	Side      string  // buy / sell
	Qty       string  // already rounded to order precision
	QtyValue  float64 // numeric qty for the USDT estimate
	Symbol    string
	Weight    float64 // fraction of balance, e.g. 0.70
	Price     float64
	Timestamp time.Time
}

// Text 渲染三行下单摘要：方向/数量/标的、比重与现价、占用金额与时间。
func (o OrderFilled) Text() string {
	return fmt.Sprintf(
		"✅ order submitted: %s %s %s\n"+
			"📊 weight: %.0f%% | price: %.3f USDT\n"+
			"💰 notional: %.2f USDT | ⏰ %s",
		strings.ToUpper(o.Side), o.Qty, o.Symbol,
		o.Weight*100, o.Price,
		o.QtyValue*o.Price, o.Timestamp.Local().Format("2006-01-02 15:04:05"),
	)
}
