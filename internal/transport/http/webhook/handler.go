package webhook

import (
	"fmt"
	"net/http"
	"time"

	"hooktrader/internal/alert"
	"hooktrader/internal/dedup"
	"hooktrader/internal/gateway/exchange"
	"hooktrader/internal/gateway/notifier"
	"hooktrader/internal/logger"
	"hooktrader/internal/sizing"

	"github.com/gin-gonic/gin"
)

// Handler 将一条告警按固定流程转成一笔市价单：
// 去重 → 查余额 → 查现价 → 算数量 → 下单 → 推送。
// 除去重表外无跨请求状态；所有上游失败对本次请求都是终态，不重试。
type Handler struct {
	exchange exchange.Exchange
	notify   notifier.TextNotifier
	sizer    *sizing.Sizer
	dedup    *dedup.Suppressor
	symbol   string

	now func() time.Time // injectable clock
}

func NewHandler(ex exchange.Exchange, notify notifier.TextNotifier, sizer *sizing.Sizer, sup *dedup.Suppressor, symbol string) *Handler {
	return &Handler{
		exchange: ex,
		notify:   notify,
		sizer:    sizer,
		dedup:    sup,
		symbol:   symbol,
		now:      time.Now,
	}
}

func (h *Handler) Handle(c *gin.Context) {
	trace := c.GetString(traceIDKey)

	var a alert.Alert
	if err := c.ShouldBindJSON(&a); err != nil {
		logger.Warnf("[%s] webhook: bad JSON: %v", trace, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	action := a.Action()
	orderID := a.ResolveOrderID()
	if action == "" || orderID == "" {
		logger.Warnf("[%s] webhook: missing order_action or order_id (signal=%q)", trace, a.Signal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data"})
		return
	}
	logger.Infof("[%s] webhook: signal=%q action=%s order_id=%q", trace, a.Signal, action, orderID)

	now := h.now()
	if h.dedup.CheckAndMark(orderID, now) {
		logger.Infof("[%s] duplicate within the same second, skipping: %s", trace, orderID)
		c.JSON(http.StatusOK, gin.H{"status": fmt.Sprintf("%s skipped (duplicate second)", orderID)})
		return
	}

	ctx := c.Request.Context()

	balance, err := h.exchange.GetBalance(ctx)
	if err != nil {
		logger.Errorf("[%s] balance fetch failed: %v", trace, err)
		h.notifyBestEffort(fmt.Sprintf("❌ balance fetch failed: %v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Insufficient balance or failed to fetch"})
		return
	}
	if balance == 0 {
		logger.Warnf("[%s] balance is zero, aborting", trace)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Insufficient balance or failed to fetch"})
		return
	}

	price, err := h.exchange.GetPrice(ctx, h.symbol)
	if err != nil {
		logger.Errorf("[%s] price fetch failed: %v", trace, err)
		h.notifyBestEffort(fmt.Sprintf("❌ price fetch failed: %v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Price fetch failed"})
		return
	}

	qty := h.sizer.Quantity(orderID, balance, price)
	logger.Infof("[%s] order qty=%s (balance=%.2f USDT, price=%.3f)", trace, qty, balance, price)

	res, err := h.exchange.PlaceMarketOrder(ctx, action, h.symbol, qty.String())
	if err != nil {
		logger.Errorf("[%s] order failed: %v", trace, err)
		h.notifyBestEffort(fmt.Sprintf("❌ order failed: %v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order request failed"})
		return
	}

	logger.Infof("[%s] order response: %d - %s", trace, res.StatusCode, res.Body)
	h.notifyBestEffort(notifier.OrderFilled{
		Side:      action,
		Qty:       qty.String(),
		QtyValue:  qty.InexactFloat64(),
		Symbol:    h.symbol,
		Weight:    h.sizer.Weight(orderID),
		Price:     price,
		Timestamp: now,
	}.Text())
	c.Data(http.StatusOK, "application/json", res.Body)
}

// notifyBestEffort 推送通知；失败只记日志，绝不影响请求结果。
func (h *Handler) notifyBestEffort(text string) {
	if h.notify == nil {
		return
	}
	if err := h.notify.SendText(text); err != nil {
		logger.Warnf("notify failed: %v", err)
	}
}
