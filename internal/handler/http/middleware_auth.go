// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, CORS, and panic
// recovery concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it via [service.AuthService.ResolveToken], and on success
// stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent.
//   - The header value cannot be parsed as a bearer token.
//   - The token is expired, malformed, carries a foreign issuer, or its
//     subject no longer maps to an existing account.
//
// Every rejection carries the uniform JSON error body and the
// "WWW-Authenticate: Bearer" header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("missing Authorization header")
			writeUnauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("malformed Authorization header")
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeUnauthorized(w)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, "Could not validate credentials", http.StatusUnauthorized)
}
