package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/infrastructure/auth"
	"github.com/orris-inc/subkeeper/internal/infrastructure/config"
	"github.com/orris-inc/subkeeper/internal/infrastructure/metrics"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
	"github.com/orris-inc/subkeeper/internal/infrastructure/repository"
	sharedConfig "github.com/orris-inc/subkeeper/internal/shared/config"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	cfg := &config.Config{
		Database: sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", AccessExpMinutes: 5},
		},
		RateLimit: sharedConfig.RateLimitConfig{RequestsPerMinute: 6000, Burst: 1000},
	}

	container, err := NewContainer(db, cfg, nil, metrics.New(), logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(container.Shutdown)

	return &testServer{t: t, engine: container.SetupRoutes(), db: db}
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *testServer) register(email string) string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(s.t, http.StatusCreated, code)
	return tokenOf(s.t, env)
}

func (s *testServer) admin(email string) string {
	s.t.Helper()
	log := logger.NewNopLogger()
	uc := usecases.NewCreateAdminUseCase(repository.NewUserRepository(s.db, log), auth.NewBcryptPasswordHasher(4), log)
	_, err := uc.Execute(s.t.Context(), usecases.CreateAdminCommand{Email: email, Password: "adminpass123"})
	require.NoError(s.t, err)

	code, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": "adminpass123",
	})
	require.Equal(s.t, http.StatusOK, code)
	return tokenOf(s.t, env)
}

func tokenOf(t *testing.T, env envelope) string {
	t.Helper()
	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func idOf(t *testing.T, env envelope) uint {
	t.Helper()
	var data struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotZero(t, data.ID)
	return data.ID
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_AuthAndPermissions(t *testing.T) {
	s := newTestServer(t)
	userToken := s.register("user@example.com")

	code, env := s.do(http.MethodGet, "/api/v1/plans", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	code, _ = s.do(http.MethodGet, "/api/v1/plans", userToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/v1/plans", userToken, map[string]any{
		"name": "Basic", "price": "10", "duration_days": 30,
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodGet, "/api/v1/subscriptions/status/active", userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestRouter_SubscriptionLifecycle(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.admin("admin@example.com")
	userToken := s.register("user@example.com")
	otherToken := s.register("other@example.com")

	code, env := s.do(http.MethodPost, "/api/v1/plans", adminToken, map[string]any{
		"name": "Basic", "price": "10", "duration_days": 30,
	})
	require.Equal(t, http.StatusCreated, code)
	basicID := idOf(t, env)

	code, env = s.do(http.MethodPost, "/api/v1/plans", adminToken, map[string]any{
		"name": "Pro", "price": "20", "duration_days": 15,
	})
	require.Equal(t, http.StatusCreated, code)
	proID := idOf(t, env)

	code, env = s.do(http.MethodPost, "/api/v1/subscriptions", userToken, map[string]any{"plan_id": basicID})
	require.Equal(t, http.StatusCreated, code)
	subID := idOf(t, env)
	subPath := fmt.Sprintf("/api/v1/subscriptions/%d", subID)

	// one active subscription per user
	code, env = s.do(http.MethodPost, "/api/v1/subscriptions", userToken, map[string]any{"plan_id": proID})
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)

	code, _ = s.do(http.MethodGet, subPath, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, subPath, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPut, subPath, userToken, map[string]any{"plan_id": proID})
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPut, subPath, userToken, map[string]any{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPut, subPath, userToken, map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/subscriptions/history/%d", subID), userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var entries []struct {
		ChangeType string `json:"change_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "create", entries[2].ChangeType)

	code, env = s.do(http.MethodGet, "/api/v1/subscriptions/history", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var grouped map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &grouped))
	assert.Len(t, grouped[fmt.Sprint(subID)], 3)

	code, _ = s.do(http.MethodGet, "/api/v1/subscriptions/history", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, subPath, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, subPath, userToken, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = s.do(http.MethodGet, "/api/v1/subscriptions/status/cancelled", adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}
