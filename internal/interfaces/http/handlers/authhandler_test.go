package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/subkeeper/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result  *dto.AuthResponse
	err     error
	lastCmd usecases.RegisterWithPasswordCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*dto.AuthResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result  *dto.AuthResponse
	err     error
	lastCmd usecases.LoginWithPasswordCommand
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*dto.AuthResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func testAuthResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		User:        &dto.UserResponse{ID: 1, Email: "alice@example.com", Role: "user"},
		AccessToken: "token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
	}
}

// =====================================================================
// TestAuthHandler_Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	registerUC := &mockRegisterUC{result: testAuthResponse()}
	handler := NewAuthHandler(registerUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice@example.com", registerUC.lastCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data dto.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "token", data.AccessToken)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, nil, testutil.NewMockLogger())

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing password", map[string]string{"email": "alice@example.com"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "correct horse"}},
		{"short password", RegisterRequest{Email: "alice@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", tt.body)

			handler.Register(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
		})
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	registerUC := &mockRegisterUC{err: errors.NewConflictError("email already exists")}
	handler := NewAuthHandler(registerUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestAuthHandler_Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUC{result: testAuthResponse()}
	handler := NewAuthHandler(nil, loginUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, loginUC.lastCmd.IPAddress)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	loginUC := &mockLoginUC{err: errors.NewInvalidCredentialsError()}
	handler := NewAuthHandler(nil, loginUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "invalid email or password", resp.Error.Message)
}
