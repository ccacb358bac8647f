package http

import (
	"net/http"
)

// Middleware constructor.
type Middleware func(http.Handler) http.Handler

// SetCORS sets the CORS headers the browser-facing gateway expects. Every
// response carries them, error responses included.
func SetCORS(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		// Access-Control-Allow-Origin must be present in every response
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			// allow and stop processing in pre-flight requests
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
