package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-crm/internal/api/middleware"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/mocks"
	"github.com/feral-file/ff-crm/internal/ratelimit"
)

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"Internal server error"}`, w.Body.String())
}

func TestLogger_ObservesRoute(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(middleware.Logger(m))
	r.GET("/contacts/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contacts/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/contacts/:id", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestSetupCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://app.example.com", want: "*"},
		{name: "allowed origin", origins: []string{"https://app.example.com"}, origin: "https://app.example.com", want: "https://app.example.com"},
		{name: "other origin", origins: []string{"https://app.example.com"}, origin: "https://evil.example.com", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.SetupCORS(tt.origins))
			r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func newRateLimitedRouter(l ratelimit.Limiter, m *metrics.Metrics, actorID string) *gin.Engine {
	r := gin.New()
	if actorID != "" {
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), auth.Actor{ID: actorID}))
			c.Next()
		})
	}
	r.Use(middleware.RateLimit(l, m))
	r.POST("/contacts", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name           string
		actorID        string
		wantKey        string
		decision       ratelimit.Decision
		err            error
		wantStatus     int
		wantRetryAfter string
	}{
		{
			name:       "allowed actor",
			actorID:    "user-a",
			wantKey:    "actor:user-a",
			decision:   ratelimit.Decision{Allowed: true, Remaining: 4},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous keyed by ip",
			wantKey:    "ip:192.0.2.1",
			decision:   ratelimit.Decision{Allowed: true},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "rejected",
			actorID:        "user-a",
			wantKey:        "actor:user-a",
			decision:       ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "2",
		},
		{
			name:       "limiter error fails open",
			actorID:    "user-a",
			wantKey:    "actor:user-a",
			err:        errors.New("redis down"),
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := mocks.NewMockRateLimiter(ctrl)
			m := metrics.New(prometheus.NewRegistry())

			limiter.EXPECT().
				Allow(gomock.Any(), tt.wantKey).
				Return(tt.decision, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/contacts", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			w := httptest.NewRecorder()
			newRateLimitedRouter(limiter, m, tt.actorID).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRetryAfter, w.Header().Get("Retry-After"))
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitRejections))
			}
		})
	}
}

func TestRateLimit_NilLimiter(t *testing.T) {
	w := httptest.NewRecorder()
	newRateLimitedRouter(nil, nil, "").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contacts", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
