package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/infrastructure/auth"
	"github.com/orris-inc/subkeeper/internal/infrastructure/permission"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
	"github.com/orris-inc/subkeeper/internal/shared/constants"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// =====================================================================
// Auth
// =====================================================================

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	token, err := jwtService.Issue(42, authorization.RoleAdmin)
	require.NoError(t, err)

	other := auth.NewJWTService("other-secret", 60)
	foreign, err := other.Issue(42, authorization.RoleAdmin)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService, logger.NewNopLogger()).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token.AccessToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token.AccessToken, http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign.AccessToken, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(r, http.MethodGet, "/me", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":42,"role":"admin"}`, w.Body.String())
			}
		})
	}
}

// =====================================================================
// Permission
// =====================================================================

type fakeEnforcer struct {
	allowed bool
	err     error
	role    string
}

func (f *fakeEnforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	f.role = role
	return f.allowed, f.err
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		enforcer   *fakeEnforcer
		authed     bool
		wantStatus int
	}{
		{"allowed", &fakeEnforcer{allowed: true}, true, http.StatusOK},
		{"denied", &fakeEnforcer{allowed: false}, true, http.StatusForbidden},
		{"enforcer error", &fakeEnforcer{err: errors.New("boom")}, true, http.StatusInternalServerError},
		{"anonymous", &fakeEnforcer{allowed: true}, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPermissionMiddleware(tt.enforcer, logger.NewNopLogger())

			r := gin.New()
			r.POST("/plans", func(c *gin.Context) {
				if tt.authed {
					c.Set(constants.ContextKeyUserID, uint(1))
					c.Set(constants.ContextKeyUserRole, "user")
				}
				c.Next()
			}, m.RequirePermission(permission.ResourcePlan, permission.ActionCreate), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := perform(r, http.MethodPost, "/plans", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.authed {
				assert.Equal(t, "user", tt.enforcer.role)
			}
		})
	}
}

// =====================================================================
// Request ID / recovery / headers
// =====================================================================

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := perform(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = perform(r, http.MethodGet, "/ping", nil)
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := perform(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}), SecurityHeaders())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/ping", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = perform(r, http.MethodGet, "/ping", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(r, http.MethodOptions, "/ping", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// =====================================================================
// Rate limiting / metrics
// =====================================================================

type stubLimiter struct {
	allowed bool
	err     error
	lastKey string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.lastKey = key
	return s.allowed, s.err
}

type countingRecorder struct {
	mu        sync.Mutex
	limited   int
	requests  []string
	durations []time.Duration
}

func (r *countingRecorder) RequestRateLimited() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limited++
}

func (r *countingRecorder) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, method+" "+path+" "+status)
	r.durations = append(r.durations, duration)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		limiter     *stubLimiter
		wantStatus  int
		wantLimited int
	}{
		{"allowed", &stubLimiter{allowed: true}, http.StatusOK, 0},
		{"rejected", &stubLimiter{allowed: false}, http.StatusTooManyRequests, 1},
		{"limiter down fails open", &stubLimiter{err: errors.New("redis down")}, http.StatusOK, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &countingRecorder{}
			r := gin.New()
			r.Use(RateLimit(tt.limiter, recorder, logger.NewNopLogger()))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := perform(r, http.MethodGet, "/ping", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLimited, recorder.limited)
			assert.Equal(t, "ip:192.0.2.1", tt.limiter.lastKey)
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	recorder := &countingRecorder{}
	r := gin.New()
	r.Use(Metrics(recorder))
	r.GET("/plans/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodGet, "/plans/17", nil)
	perform(r, http.MethodGet, "/missing", nil)

	require.Len(t, recorder.requests, 2)
	assert.Equal(t, "GET /plans/:id 200", recorder.requests[0])
	assert.Equal(t, "GET unmatched 404", recorder.requests[1])
}
