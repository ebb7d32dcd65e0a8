package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/utils"
)

// withRecover converts a downstream panic into the uniform 500 JSON error
// body. It replaces chi's stock Recoverer so that even crashed requests keep
// the {detail, status_code} response shape.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log := logger.FromRequest(r)
				log.Error().Any("panic", rec).Str("uri", r.RequestURI).Msg("panic recovered in http handler")

				utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
