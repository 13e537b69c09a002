package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "hotel-booking")

	m.ObserveHTTPRequest("POST", "/api/v1/bookings/{resourceType}", 201, 15*time.Millisecond)
	m.IncBookingCreated("room", "confirmed")
	m.IncBookingCreated("room", "confirmed")
	m.IncStatusTransition("spa", "pending", "confirmed")
	m.IncConflict("spa", "transition")
	m.ObserveSettlement("telebirr", "paid", "ok", time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/bookings/{resourceType}", "201")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingsCreated.WithLabelValues("room", "confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.statusTransitions.WithLabelValues("spa", "pending", "confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.conflicts.WithLabelValues("spa", "transition")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.settlements.WithLabelValues("telebirr", "paid", "ok")))
}

func TestMetrics_DBQueryErrorsIgnoreNoRows(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "hotel-booking")

	m.ObserveDBQuery("select", time.Millisecond, sql.ErrNoRows)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("connection reset"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
}

func TestMetrics_DBStats(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "hotel-booking")

	m.SetDBStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 9})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.dbOpenConns))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dbInUseConns))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.dbIdleConns))
	assert.Equal(t, float64(9), testutil.ToFloat64(m.dbWaitCount))
}
