package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/items-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_PanicBecomesUniformJSON500(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withRecover(panicking).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "Internal server error", apiErr.Detail)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestRecover_NoPanicPassesThrough(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withRecover(ok).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
