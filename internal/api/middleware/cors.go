package middleware

import (
	"net/http"
	"strings"
)

// CORS разрешает запросы с любых источников
// Список методов для Access-Control-Allow-Methods выставляет mux.CORSMethodMiddleware;
// preflight OPTIONS завершается здесь со статусом 204
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions {
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				h.Set("Access-Control-Allow-Headers", requested)
			} else {
				h.Set("Access-Control-Allow-Headers", strings.Join([]string{"Content-Type", HeaderRequestID}, ", "))
			}
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
