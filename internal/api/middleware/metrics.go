package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

const unknownRoute = "unmatched"

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
// Шаблон ("/api/appointments/{id}") вместо пути ограничивает кардинальность меток
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unknownRoute
	}
	return tpl
}
