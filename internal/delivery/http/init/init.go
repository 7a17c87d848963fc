package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
)

const apiPrefix = "/api"

const MsgRouteNotFound = "Route not found"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	logger *slog.Logger
}

type PoolOption func(*ControllerPool)

func WithCORS(origins []string) PoolOption {
	return func(pool *ControllerPool) {
		if len(origins) == 0 {
			return
		}
		config := cors.DefaultConfig()
		config.AllowOrigins = origins
		config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Authorization"}
		config.AllowCredentials = true
		config.MaxAge = 12 * time.Hour
		pool.engine.Use(cors.New(config))
	}
}

// WithMiddleware installs global middleware ahead of every route.
func WithMiddleware(mw ...gin.HandlerFunc) PoolOption {
	return func(pool *ControllerPool) {
		pool.engine.Use(mw...)
	}
}

// WithTrustedProxies sets the proxies whose X-Forwarded-For is used for the
// client IP. Without it no proxy is trusted and the client IP is the peer
// address.
func WithTrustedProxies(proxies []string) PoolOption {
	return func(pool *ControllerPool) {
		if len(proxies) == 0 {
			return
		}
		if err := pool.engine.SetTrustedProxies(proxies); err != nil {
			pool.logger.Error("invalid trusted proxies, trusting none",
				slog.Any("proxies", proxies), slog.String("error", err.Error()))
			_ = pool.engine.SetTrustedProxies(nil)
		}
	}
}

func WithLogger(logger *slog.Logger) PoolOption {
	return func(pool *ControllerPool) {
		pool.logger = logger
	}
}

func NewControllerPool(opts ...PoolOption) *ControllerPool {
	engine := gin.Default()
	_ = engine.SetTrustedProxies(nil)
	pool := &ControllerPool{
		pool:   make([]Controller, 0, 10),
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(pool)
	}

	pool.rg = engine.Group(apiPrefix)
	engine.NoRoute(func(ctx *gin.Context) {
		http_common.Abort(ctx, http.StatusNotFound, MsgRouteNotFound)
	})
	return pool
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until ctx is cancelled, then shuts down gracefully within
// shutdownTimeout.
func (pool *ControllerPool) RunAll(ctx context.Context, host, port string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	pool.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
