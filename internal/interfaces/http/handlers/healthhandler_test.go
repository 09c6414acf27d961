package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers/testutil"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(ctx context.Context) error {
	return s.err
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantDB     string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(stubPinger{err: tt.pingErr}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
			handler.HealthCheck(c)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			var data HealthResponse
			require.NoError(t, json.Unmarshal(resp.Data, &data))
			assert.Equal(t, tt.wantDB, data.Database)
		})
	}
}
