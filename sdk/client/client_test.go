package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL + "/"), srv.Close
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_StoresToken(t *testing.T) {
	var gotAuth string
	c, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			body, _ := io.ReadAll(r.Body)
			var req map[string]string
			if err := json.Unmarshal(body, &req); err != nil || req["email"] != "a@example.com" {
				t.Errorf("unexpected login body %s", body)
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"access_token": "tok-1", "token_type": "Bearer", "expires_in": 3600},
			})
		case "/api/v1/users/me":
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"id": 7, "email": "a@example.com", "role": "user"},
			})
		default:
			http.NotFound(w, r)
		}
	})
	defer closeFn()

	res, err := c.Login(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.AccessToken != "tok-1" || c.Token() != "tok-1" {
		t.Fatalf("token not stored: %+v", res)
	}

	u, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if u.ID != 7 {
		t.Errorf("expected user 7, got %d", u.ID)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestDoRequest_DecodesAPIError(t *testing.T) {
	c, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   map[string]any{"type": "not_found", "message": "subscription not found"},
		})
	})
	defer closeFn()

	_, err := c.GetSubscription(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Type != "not_found" {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestCancelSubscription_NoContent(t *testing.T) {
	var method, path string
	c, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	defer closeFn()

	if err := c.CancelSubscription(context.Background(), 3); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if method != http.MethodDelete || path != "/api/v1/subscriptions/3" {
		t.Errorf("unexpected request %s %s", method, path)
	}
}

func TestHistory_GroupsBySubscription(t *testing.T) {
	c, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"5": []map[string]any{{"id": 2, "subscription_id": 5, "change_type": "upgrade"}, {"id": 1, "subscription_id": 5, "change_type": "create"}},
			},
		})
	})
	defer closeFn()

	grouped, err := c.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(grouped[5]) != 2 || grouped[5][0].ChangeType != "upgrade" {
		t.Errorf("unexpected history %+v", grouped)
	}
}
