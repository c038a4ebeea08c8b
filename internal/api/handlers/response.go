package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Машинные типы ошибок в теле ответа
const (
	KindInvalidRequest  = "invalid_request"
	KindInvalidDateTime = "invalid_datetime"
	KindClosedDay       = "closed_day"
	KindOutsideHours    = "outside_hours"
	KindConflict        = "conflict"
	KindInvalidDuration = "invalid_duration"
	KindServiceNotFound = "service_not_found"
	KindNotFound        = "not_found"
	KindInternal        = "internal"
)

const (
	maxBodyBytes      = 1 << 20
	msgInternalError  = "Notranja napaka strežnika"
	msgInvalidRequest = "Neveljavna zahteva"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в v
// Пустое тело и мусор после JSON-объекта считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if decoder.More() {
		return errors.New("unexpected data after json object")
	}

	return nil
}

// RespondJSON пишет data как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку в едином формате
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Kind:    kind,
		Message: message,
	})
}

// RespondBadRequest 400 с типом invalid_request
func RespondBadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgInvalidRequest
	}
	RespondError(w, http.StatusBadRequest, KindInvalidRequest, message)
}

// RespondValidationError 400 с конкретным типом ошибки валидации
func RespondValidationError(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusBadRequest, kind, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, KindConflict, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternal, msgInternalError)
}
