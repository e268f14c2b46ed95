package app

import (
	"context"
	"fmt"
	"time"

	hcfg "hooktrader/internal/config"
	"hooktrader/internal/dedup"
	"hooktrader/internal/gateway/bybit"
	"hooktrader/internal/gateway/notifier"
	"hooktrader/internal/logger"
	"hooktrader/internal/sizing"
	"hooktrader/internal/transport/http/webhook"

	"golang.org/x/sync/errgroup"
)

// App 负责应用级编排：加载配置 → 装配依赖 → 启动 webhook 服务。
type App struct {
	cfg    *hcfg.Config
	server *webhook.Server
}

// NewApp 根据配置构建应用对象（不启动）。
func NewApp(cfg *hcfg.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	var notify notifier.TextNotifier = notifier.Nop{}
	if cfg.Notify.Telegram.Enabled {
		notify = notifier.NewTelegram(cfg.Notify.Telegram.BotToken, cfg.Notify.Telegram.ChatID)
	}

	client := bybit.NewClient(cfg.Bybit)
	sizer := sizing.New(cfg.Trading.Weights, cfg.Trading.Leverage, cfg.Trading.Slippage)
	suppressor := dedup.NewSuppressor(time.Duration(cfg.Dedup.WindowSeconds) * time.Second)
	handler := webhook.NewHandler(client, notify, sizer, suppressor, cfg.Trading.Symbol)

	server, err := webhook.NewServer(webhook.ServerConfig{Addr: cfg.App.HTTPAddr, Handler: handler})
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, server: server}, nil
}

// Run 启动 webhook HTTP 服务，直到 ctx 取消。
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	logger.Infof("webhook server listening on %s (symbol=%s, leverage=%dx, slippage=%.4f)",
		a.server.Addr(), a.cfg.Trading.Symbol, a.cfg.Trading.Leverage, a.cfg.Trading.Slippage)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.server.Start(ctx); err != nil {
			return fmt.Errorf("webhook http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
