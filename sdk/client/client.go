package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const apiPrefix = "/api/v1"

// Client is the subkeeper API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken presets the bearer token, e.g. one obtained earlier from Login.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// NewClient creates a new API client.
//
// Parameters:
//   - baseURL: the server root without the API prefix (e.g., "https://subs.example.com")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("api error: status=%d type=%s message=%s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Register creates an account and keeps the returned token for later calls.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", body, &result); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	c.setToken(result.AccessToken)
	return &result, nil
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.setToken(result.AccessToken)
	return &result, nil
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &u, nil
}

// ListPlans returns the plan catalog.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doRequest(ctx, http.MethodGet, "/plans", nil, &plans); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// GetPlan retrieves one plan.
func (c *Client) GetPlan(ctx context.Context, id uint) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/plans/%d", id), nil, &p); err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// CreatePlan adds a plan to the catalog. Requires an admin token.
func (c *Client) CreatePlan(ctx context.Context, in PlanInput) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, http.MethodPost, "/plans", in, &p); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &p, nil
}

// UpdatePlan patches a plan. Requires an admin token.
func (c *Client) UpdatePlan(ctx context.Context, id uint, in PlanUpdate) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/plans/%d", id), in, &p); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return &p, nil
}

// DeletePlan removes a plan. Requires an admin token.
func (c *Client) DeletePlan(ctx context.Context, id uint) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/plans/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// Subscribe starts a subscription to planID for the caller.
func (c *Client) Subscribe(ctx context.Context, planID uint) (*Subscription, error) {
	body := map[string]uint{"plan_id": planID}

	var s Subscription
	if err := c.doRequest(ctx, http.MethodPost, "/subscriptions", body, &s); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &s, nil
}

// ListSubscriptions returns the caller's subscriptions, newest first.
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.doRequest(ctx, http.MethodGet, "/subscriptions", nil, &subs); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// ListSubscriptionsByStatus lists all users' subscriptions in a status. Requires an admin token.
func (c *Client) ListSubscriptionsByStatus(ctx context.Context, status string) ([]Subscription, error) {
	var subs []Subscription
	path := "/subscriptions/status/" + url.PathEscape(status)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &subs); err != nil {
		return nil, fmt.Errorf("list subscriptions by status: %w", err)
	}
	return subs, nil
}

// GetSubscription retrieves one subscription.
func (c *Client) GetSubscription(ctx context.Context, id uint) (*Subscription, error) {
	var s Subscription
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/subscriptions/%d", id), nil, &s); err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// UpdateSubscription changes the status and/or plan of a subscription.
func (c *Client) UpdateSubscription(ctx context.Context, id uint, in SubscriptionUpdate) (*Subscription, error) {
	var s Subscription
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/subscriptions/%d", id), in, &s); err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return &s, nil
}

// CancelSubscription cancels a subscription. No history entry is written for it.
func (c *Client) CancelSubscription(ctx context.Context, id uint) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/subscriptions/%d", id), nil, nil); err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	return nil
}

// SubscriptionHistory returns the ledger of one subscription, newest first.
func (c *Client) SubscriptionHistory(ctx context.Context, id uint) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/subscriptions/history/%d", id), nil, &entries); err != nil {
		return nil, fmt.Errorf("get subscription history: %w", err)
	}
	return entries, nil
}

// History returns the caller's ledger grouped by subscription id.
func (c *Client) History(ctx context.Context) (map[uint][]HistoryEntry, error) {
	var grouped map[uint][]HistoryEntry
	if err := c.doRequest(ctx, http.MethodGet, "/subscriptions/history", nil, &grouped); err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return grouped, nil
}

// doRequest performs an HTTP request and decodes the envelope's data into result.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	var apiResp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if !apiResp.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: apiResp.Message}
	}

	if len(apiResp.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(apiResp.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Error != nil {
		apiErr.Type = apiResp.Error.Type
		apiErr.Message = apiResp.Error.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
