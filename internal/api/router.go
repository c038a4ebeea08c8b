package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getOpeningHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_opening_hours"
	getServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

// Handlers набор обработчиков HTTP API
type Handlers struct {
	Health            *healthHandler.Handler
	GetServices       *getServicesHandler.Handler
	GetOpeningHours   *getOpeningHoursHandler.Handler
	GetAvailableSlots *getAvailableSlotsHandler.Handler
	CreateAppointment *createAppointmentHandler.Handler
	GetAppointment    *getAppointmentHandler.Handler
	ListAppointments  *listAppointmentsHandler.Handler
}

// Options необязательные части роутера
type Options struct {
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
	Gatherer    prometheus.Gatherer // nil - глобальный реестр
	AccessLog   middleware.Logger   // nil - без access-лога
}

// NewRouter регистрирует маршруты и middleware
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLog(opts.AccessLog))
	}
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	r.Use(mux.CORSMethodMiddleware(r))
	r.Use(middleware.CORS)

	if opts.Metrics != nil && opts.MetricsPath != "" {
		handler := promhttp.Handler()
		if opts.Gatherer != nil {
			handler = promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})
		}
		r.Handle(opts.MetricsPath, handler).Methods(http.MethodGet)
	}

	r.HandleFunc("/", h.Health.Root).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/test", h.Health.Health).Methods(http.MethodGet, http.MethodOptions) // старый адрес проверки БД

	// Каталог и часы работы
	r.HandleFunc("/api/services", h.GetServices.Handle).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/opening-hours", h.GetOpeningHours.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Свободные слоты
	r.HandleFunc("/api/availability", h.GetAvailableSlots.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Термины
	r.HandleFunc("/api/appointments", h.CreateAppointment.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/appointments", h.ListAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/api/appointments/{id:[0-9]+}", h.GetAppointment.Handle).Methods(http.MethodGet, http.MethodOptions)

	return r
}
