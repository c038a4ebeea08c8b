package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.ObserveDBQuery("select", time.Millisecond)
		m.IncAvailabilityRequest("striženje")
		m.IncAppointmentCreated("striženje")
		m.IncAppointmentRejected("conflict")
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("salon-test", prometheus.NewRegistry())

	m.IncAppointmentCreated("barvanje")
	m.IncAppointmentCreated("barvanje")
	m.IncAppointmentRejected("conflict")
	m.IncAvailabilityRequest("striženje")
	m.ObserveHTTPRequest(http.MethodPost, "/api/appointments", http.StatusCreated, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppointmentsCreated.WithLabelValues("barvanje")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsRejected.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityRequests.WithLabelValues("striženje")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/appointments", "201")))
}

func TestNewWithRegisterer_ServiceLabels(t *testing.T) {
	reg := prometheus.NewRegistry()

	var m *Metrics
	require.NotPanics(t, func() {
		m = NewWithRegisterer("salon-test", reg)
	})
	m.IncAppointmentCreated("barvanje")
	m.IncAvailabilityRequest("striženje")

	families, err := reg.Gather()
	require.NoError(t, err)

	labels := map[string]map[string]string{}
	for _, mf := range families {
		require.NotEmpty(t, mf.GetMetric())
		pairs := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			pairs[lp.GetName()] = lp.GetValue()
		}
		labels[mf.GetName()] = pairs
	}

	require.Contains(t, labels, "appointments_created_total")
	assert.Equal(t, map[string]string{"app": "salon-test", "service": "barvanje"}, labels["appointments_created_total"])
	require.Contains(t, labels, "availability_requests_total")
	assert.Equal(t, map[string]string{"app": "salon-test", "service": "striženje"}, labels["availability_requests_total"])
}

func TestNewWithRegisterer_DuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegisterer("salon-test", reg)

	assert.Panics(t, func() {
		NewWithRegisterer("salon-test", reg)
	})
}
