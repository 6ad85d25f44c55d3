package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mykuliah/config"
	"mykuliah/infras/otel/mocks"
	cacheMocks "mykuliah/shared/cache/mocks"
	"mykuliah/shared/constant"
	"mykuliah/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(backend string) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.Backend = backend
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func serve(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.RemoteAddr = ip + ":52000"
	req.Header.Set(constant.RequestHeaderUserAgent, "go-test")
	// ignored unless RealIP rewrote RemoteAddr upstream
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.9")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimit_Redis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(constant.RateLimiterBackendRedis), mockCache).RateLimit()(okHandler)

	tests := []struct {
		name          string
		setupMock     func()
		wantCode      int
		wantRemaining string
	}{
		{
			name: "first request in window",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1:go-test", 60*time.Second).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "last allowed request",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "over the limit",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(4), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name: "redis down lets the request through",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rec := serve(handler, "10.0.0.1")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_MemoryPerClient(t *testing.T) {
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(constant.RateLimiterBackendMemory), nil).RateLimit()(okHandler)

	for range 3 {
		assert.Equal(t, http.StatusOK, serve(handler, "10.0.0.1").Code)
	}

	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "10.0.0.2").Code)
}

func TestRateLimit_IgnoresSpoofedForwardedFor(t *testing.T) {
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(constant.RateLimiterBackendMemory), nil).RateLimit()(okHandler)

	for i := range 4 {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.RemoteAddr = "10.0.0.7:52000"
		req.Header.Set(constant.RequestHeaderForwardedFor, fmt.Sprintf("198.51.100.%d", i))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if i < 3 {
			assert.Equal(t, http.StatusOK, rec.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := limiterConfig(constant.RateLimiterBackendMemory)
	cfg.App.RateLimiter.Enable = false

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil).RateLimit()(okHandler)

	rec := serve(handler, "10.0.0.1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}
