package http

import "net/http"

// corsAllowedOrigins is the whitelist of browser origins permitted to call
// the API. Local frontend development servers only.
var corsAllowedOrigins = map[string]struct{}{
	"http://localhost:3000": {},
	"http://127.0.0.1:3000": {},
}

// withCORS handles cross-origin requests from the allowed origins: it mirrors
// the Origin header back with credential support and short-circuits OPTIONS
// preflight requests. Requests from other origins pass through untouched and
// are left for the browser to block.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, allowed := corsAllowedOrigins[origin]; allowed {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Trace-ID")
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
