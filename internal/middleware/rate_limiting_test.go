package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeRateLimiter struct {
	allowed    int
	retryAfter time.Duration
	err        error
}

func (f *fakeRateLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &redis_rate.Result{
		Allowed:    f.allowed,
		RetryAfter: f.retryAfter,
	}, nil
}

func TestRateLimit(t *testing.T) {
	testCases := []struct {
		name                string
		limiter             *fakeRateLimiter
		expectedStatus      int
		expectNextCalled    bool
		expectedRateLimited float64
	}{
		{
			name:             "Allowed",
			limiter:          &fakeRateLimiter{allowed: 1},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:                "Limited",
			limiter:             &fakeRateLimiter{retryAfter: 30 * time.Second},
			expectedStatus:      http.StatusTooEarly,
			expectedRateLimited: 1,
		},
		{
			name:           "LimiterError",
			limiter:        &fakeRateLimiter{err: errors.New("redis gone")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			metricsManager := metrics.NewTestManager()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			handler := RateLimit(tc.limiter, "login", 5, metricsManager)(next)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/a/login", nil)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectNextCalled, nextCalled)
			assert.Equal(t, tc.expectedRateLimited, testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
		})
	}
}
