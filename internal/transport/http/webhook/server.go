// Package webhook 提供接收策略告警的 HTTP 服务（/webhook + 存活探针）。
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hooktrader/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceIDKey = "trace_id"

type Server struct {
	addr   string
	router *gin.Engine
}

// ServerConfig 描述 webhook HTTP 服务依赖。
type ServerConfig struct {
	Addr    string
	Handler *Handler
}

// NewServer 构建 webhook HTTP server。
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Handler == nil {
		return nil, errors.New("webhook server requires a handler")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.POST("/webhook", cfg.Handler.Handle)
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hooktrader webhook server is up")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive", "time": time.Now().Unix()})
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{addr: cfg.Addr, router: router}, nil
}

// requestLogger 为每个请求生成 trace id 并记录方法、状态与耗时。
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		traceID := uuid.NewString()[:8]
		c.Set(traceIDKey, traceID)
		c.Next()
		logger.Debugf("HTTP %s %s status=%d ip=%s dur=%s trace=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			c.ClientIP(), time.Since(start), traceID)
	}
}

// Addr 返回监听地址。
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.addr
}

// Start 启动 HTTP 服务，直到 ctx 取消或出现错误。
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("webhook server: %w", err)
		}
		return nil
	}
}
