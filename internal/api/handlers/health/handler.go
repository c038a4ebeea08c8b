package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const (
	rootMessage = "Salon API je pripravljen"

	backendRunning       = "running"
	databaseConnected    = "connected"
	databaseNotAvailable = "not available"

	pingTimeout = 2 * time.Second
)

// Pinger проверка соединения с БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// StatusResponse состояние сервиса
type StatusResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

// NewHandler создает обработчик; db == nil означает работу без БД
func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Root GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

// Health GET /health (и GET /test)
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Backend:  backendRunning,
		Database: databaseNotAvailable,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warn("GET /health - Database ping failed: %v", err)
		} else {
			resp.Database = databaseConnected
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
