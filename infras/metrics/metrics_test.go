package metrics_test

import (
	"io"
	"net/http/httptest"
	"railbook/infras/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := metrics.New()

	m.BookingsConfirmed.WithLabelValues("3A", "upi").Inc()
	m.BookingsConfirmed.WithLabelValues("3A", "upi").Inc()
	m.IntegrityFailures.WithLabelValues("duplicate_pnr").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.BookingsConfirmed.WithLabelValues("3A", "upi")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.IntegrityFailures.WithLabelValues("duplicate_pnr")), 0)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := metrics.New()
	m.SeatHoldConflicts.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "railbook_seat_hold_conflicts_total 1")
}

func TestInstancesAreIndependent(t *testing.T) {
	first := metrics.New()
	second := metrics.New()

	first.SeatHoldConflicts.Inc()

	assert.InDelta(t, 0, testutil.ToFloat64(second.SeatHoldConflicts), 0)
}
