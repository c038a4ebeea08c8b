package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getOpeningHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_opening_hours"
	getServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

func newTestServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	hours, err := domain.NewOpeningHours(domain.DefaultWindows())
	require.NoError(t, err)
	catalog, err := domain.NewCatalog(domain.DefaultServices())
	require.NoError(t, err)

	log := logger.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("salon-test", registry)
	sched := scheduler.New(hours, domain.DefaultSlotStepMinutes, time.UTC)
	repo := memory.NewRepository()

	catalogSvc := catalogService.NewService(catalog, hours)
	appointmentsSvc := appointmentsService.NewService(repo, sched, log)
	slotsUC := getAvailableSlotsUC.NewUseCase(repo, catalog, sched, m, log)
	createUC := createAppointmentUC.NewUseCase(repo, catalog, sched, txmanager.NewLocalManager(), m, log)

	router := NewRouter(Handlers{
		Health:            healthHandler.NewHandler(nil, log),
		GetServices:       getServicesHandler.NewHandler(catalogSvc),
		GetOpeningHours:   getOpeningHoursHandler.NewHandler(catalogSvc),
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(slotsUC, log),
		CreateAppointment: createAppointmentHandler.NewHandler(createUC, log),
		GetAppointment:    getAppointmentHandler.NewHandler(appointmentsSvc, log),
		ListAppointments:  listAppointmentsHandler.NewHandler(appointmentsSvc, log),
	}, Options{
		Metrics:     m,
		MetricsPath: "/metrics",
		Gatherer:    registry,
		AccessLog:   log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, m
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func booking(date, start string, duration int) map[string]interface{} {
	return map[string]interface{}{
		"service":          "striženje",
		"duration_minutes": duration,
		"date":             date,
		"start_time":       start,
		"name":             "Ana Novak",
		"phone":            "041123456",
	}
}

func TestRouter_RootAndHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"message": "Salon API je pripravljen"}, decode[map[string]string](t, resp))

	for _, path := range []string{"/health", "/test"} {
		resp = get(t, srv.URL+path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		health := decode[healthHandler.StatusResponse](t, resp)
		assert.Equal(t, "running", health.Backend, path)
		assert.Equal(t, "not available", health.Database, path)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), path)
	}
}

func TestRouter_CatalogEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	services := decode[[]map[string]interface{}](t, get(t, srv.URL+"/api/services"))
	require.Len(t, services, 2)
	assert.Equal(t, "barvanje", services[1]["key"])

	hours := decode[map[string]map[string]string](t, get(t, srv.URL+"/api/opening-hours"))
	assert.Equal(t, map[string]string{"period": "popoldne", "start": "14:00", "end": "19:00"}, hours["sreda"])
	assert.NotContains(t, hours, "nedelja")
}

func TestRouter_BookingFlow(t *testing.T) {
	srv, m := newTestServer(t)

	// 1. Свободные слоты на пустой понедельник
	resp := postJSON(t, srv.URL+"/api/availability", map[string]interface{}{
		"date": "2024-01-01", "service": "striženje", "duration_minutes": 30,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	slots := decode[[]map[string]string](t, resp)
	require.Len(t, slots, 15)
	assert.Equal(t, map[string]string{"start": "08:00", "end": "08:30"}, slots[0])

	// 2. Бронируем 09:00-09:30
	resp = postJSON(t, srv.URL+"/api/appointments", booking("2024-01-01", "09:00", 30))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]interface{}](t, resp)
	assert.Equal(t, "ok", created["status"])
	assert.Equal(t, "09:30", created["end_time"])
	assert.EqualValues(t, 1, created["id"])

	// 3. Повтор того же термина - конфликт
	resp = postJSON(t, srv.URL+"/api/appointments", booking("2024-01-01", "09:15", 15))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errResp := decode[handlers.ErrorResponse](t, resp)
	assert.Equal(t, handlers.ErrorResponse{Code: 409, Kind: "conflict", Message: "Termin je že zaseden"}, errResp)

	// 4. Слоты пересчитаны
	resp = postJSON(t, srv.URL+"/api/availability", map[string]interface{}{
		"date": "2024-01-01", "service": "striženje", "duration_minutes": 30,
	})
	assert.Len(t, decode[[]map[string]string](t, resp), 12)

	// 5. Термин доступен по ID и в списке за дату
	resp = get(t, srv.URL+"/api/appointments/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]interface{}](t, resp)
	assert.Equal(t, "09:00", got["start_time"])
	assert.Equal(t, "potrjeno", got["status"])

	list := decode[[]map[string]interface{}](t, get(t, srv.URL+"/api/appointments?date=2024-01-01"))
	assert.Len(t, list, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsCreated.WithLabelValues("striženje")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsRejected.WithLabelValues("conflict")))
}

func TestRouter_AppointmentReadsHideContacts(t *testing.T) {
	srv, _ := newTestServer(t)

	body := booking("2024-01-01", "10:00", 15)
	body["email"] = "ana@example.com"
	body["notes"] = "prvi obisk"
	resp := postJSON(t, srv.URL+"/api/appointments", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = get(t, srv.URL+"/api/appointments/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	one := decode[map[string]interface{}](t, resp)

	list := decode[[]map[string]interface{}](t, get(t, srv.URL+"/api/appointments?date=2024-01-01"))
	require.Len(t, list, 1)

	for _, ap := range []map[string]interface{}{one, list[0]} {
		assert.Equal(t, "10:15", ap["end_time"])
		for _, field := range []string{"name", "phone", "email", "notes"} {
			assert.NotContains(t, ap, field)
		}
	}
}

func TestRouter_ValidationErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		body       interface{}
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "availability bad date",
			path:       "/api/availability",
			body:       map[string]interface{}{"date": "01.01.2024", "service": "striženje", "duration_minutes": 30},
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_datetime",
			wantMsg:    "Neveljaven datum",
		},
		{
			name:       "appointment bad time",
			path:       "/api/appointments",
			body:       booking("2024-01-01", "9h", 30),
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_datetime",
			wantMsg:    "Neveljaven datum ali ura",
		},
		{
			name:       "appointment on sunday",
			path:       "/api/appointments",
			body:       booking("2024-01-07", "09:00", 30),
			wantStatus: http.StatusBadRequest,
			wantKind:   "closed_day",
			wantMsg:    "Ta dan ne delamo",
		},
		{
			name:       "appointment after close",
			path:       "/api/appointments",
			body:       booking("2024-01-01", "11:45", 30),
			wantStatus: http.StatusBadRequest,
			wantKind:   "outside_hours",
			wantMsg:    "Izven delovnega časa",
		},
		{
			name:       "appointment duration outside service",
			path:       "/api/appointments",
			body:       booking("2024-01-01", "09:00", 60),
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_duration",
		},
		{
			name: "appointment bad email",
			path: "/api/appointments",
			body: func() map[string]interface{} {
				b := booking("2024-01-01", "09:00", 30)
				b["email"] = "not-an-email"
				return b
			}(),
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+tt.path, tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			errResp := decode[handlers.ErrorResponse](t, resp)
			assert.Equal(t, tt.wantStatus, errResp.Code)
			assert.Equal(t, tt.wantKind, errResp.Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errResp.Message)
			}
		})
	}
}

func TestRouter_NotFoundAndMalformed(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/api/appointments/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[handlers.ErrorResponse](t, resp).Kind)

	resp = get(t, srv.URL+"/api/appointments")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := http.Post(srv.URL+"/api/availability", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/appointments", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "content-type", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	get(t, srv.URL+"/api/services")
	resp := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/services"`)
	assert.Contains(t, string(body), "http_requests_total")
}
