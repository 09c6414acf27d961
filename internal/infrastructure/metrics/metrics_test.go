package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	c := New()

	c.RecordHTTPRequest("POST", "/api/v1/subscriptions", "201", 20*time.Millisecond)
	c.RecordHTTPRequest("POST", "/api/v1/subscriptions", "201", 30*time.Millisecond)
	c.RecordHTTPRequest("POST", "/api/v1/subscriptions", "409", 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/subscriptions", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/subscriptions", "409")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.HTTPRequestDuration))
}

func TestLifecycleCounters(t *testing.T) {
	c := New()

	c.SubscriptionCreated()
	c.HistoryEntryRecorded("create")
	c.HistoryEntryRecorded("upgrade")
	c.HistoryEntryRecorded("create")

	assert.Equal(t, float64(1), testutil.ToFloat64(c.SubscriptionsCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.HistoryEntriesRecorded.WithLabelValues("create")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.HistoryEntriesRecorded.WithLabelValues("upgrade")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.SubscriptionCreated()
	c.RequestRateLimited()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "subkeeper_subscriptions_created_total 1")
	assert.Contains(t, string(body), "subkeeper_rate_limited_requests_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
