//go:build !integration

package http_init

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	http_ratelimit_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/ratelimit"
)

type pingController struct{}

func (pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
}

func TestControllerPool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pool := NewControllerPool(WithCORS([]string{"http://localhost:3001"}))
	pool.Add(pingController{})
	pool.Register()

	t.Run("routes are mounted under /api", func(t *testing.T) {
		rec := httptest.NewRecorder()
		pool.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		pool.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set("Origin", "http://localhost:3001")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		pool.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestClientIPIgnoresForwardedForByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := http_ratelimit_middleware.New(0.0001, 1)
	pool := NewControllerPool(WithMiddleware(limiter.Middleware()))
	pool.Add(pingController{})
	pool.Register()

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
		rec := httptest.NewRecorder()
		pool.Handler().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, limiter.Len())
}

func TestClientIPFromTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var seen string
	pool := NewControllerPool(WithTrustedProxies([]string{"10.0.0.0/8"}))
	pool.Add(controllerFunc(func(router *gin.RouterGroup) {
		router.GET("/ip", func(ctx *gin.Context) { seen = ctx.ClientIP() })
	}))
	pool.Register()

	req := httptest.NewRequest(http.MethodGet, "/api/ip", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	pool.Handler().ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", seen)
}

type controllerFunc func(router *gin.RouterGroup)

func (f controllerFunc) RegisterRoutes(router *gin.RouterGroup) {
	f(router)
}
