package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))

	l := zap.NewExample()
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(false)
	require.NoError(t, err)
	require.NotNil(t, l)

	dev, err := NewLogger(true)
	require.NoError(t, err)
	require.NotNil(t, dev)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveRequest("/pricing", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("/pricing", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest("", http.StatusNotFound, time.Millisecond)
	m.PageExported("en")

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/pricing", "200")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unknown", "404")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.pagesExported.WithLabelValues("en")), 1e-9)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "helixio_web_requests_total")
	assert.Contains(t, rec.Body.String(), "helixio_web_pages_exported_total")

	var nilMetrics *Metrics
	nilMetrics.ObserveRequest("/", 200, 0)
	nilMetrics.PageExported("id")
}
