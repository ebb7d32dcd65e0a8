package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ItemService
// ─────────────────────────────────────────────

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	createItemFn func(ctx context.Context, ownerID int64, request models.ItemCreate) (models.Item, error)
	listItemsFn  func(ctx context.Context, ownerID int64) ([]models.Item, error)
	getItemFn    func(ctx context.Context, id, ownerID int64) (models.Item, error)
}

func (m *mockItemService) CreateItem(ctx context.Context, ownerID int64, request models.ItemCreate) (models.Item, error) {
	return m.createItemFn(ctx, ownerID, request)
}

func (m *mockItemService) ListItems(ctx context.Context, ownerID int64) ([]models.Item, error) {
	return m.listItemsFn(ctx, ownerID)
}

func (m *mockItemService) GetItem(ctx context.Context, id, ownerID int64) (models.Item, error) {
	return m.getItemFn(ctx, id, ownerID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authedUser is the account every item test operates as.
var authedUser = models.User{ID: 5, Email: "alice@example.com"}

// passThroughAuth resolves any bearer token to authedUser, so item tests can
// exercise the full router including the auth middleware.
func passThroughAuth() *mockAuthService {
	return &mockAuthService{
		resolveTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return authedUser, nil
		},
	}
}

// doItemsRequest runs a request through the fully initialised router with a
// valid bearer token attached.
func doItemsRequest(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// listItems
// ─────────────────────────────────────────────

// TestListItems_Success verifies that listing returns the owner's items in
// order.
func TestListItems_Success(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context, ownerID int64) ([]models.Item, error) {
			assert.Equal(t, authedUser.ID, ownerID)
			return []models.Item{
				{ID: 1, Name: "Book", OwnerID: ownerID},
				{ID: 2, Name: "Lamp", OwnerID: ownerID},
			}, nil
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Book", got[0].Name)
	assert.Equal(t, "Lamp", got[1].Name)
}

// TestListItems_Empty verifies that an owner with no items gets an empty JSON
// array, not null.
func TestListItems_Empty(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context, _ int64) ([]models.Item, error) {
			return []models.Item{}, nil
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

// TestListItems_ServiceError verifies the 500 response for storage failures.
func TestListItems_ServiceError(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context, _ int64) ([]models.Item, error) {
			return nil, errors.New("db is down")
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Failed to retrieve items", apiErr.Detail)
}

// ─────────────────────────────────────────────
// createItem
// ─────────────────────────────────────────────

// TestCreateItem_Created verifies the 201 response with the persisted item.
func TestCreateItem_Created(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, ownerID int64, request models.ItemCreate) (models.Item, error) {
			assert.Equal(t, authedUser.ID, ownerID)
			return models.Item{ID: 10, Name: request.Name, Description: request.Description, OwnerID: ownerID}, nil
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodPost, "/items", jsonBody(t, models.ItemCreate{Name: "Book"}))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "Book", created.Name)
	assert.Nil(t, created.Description)
}

// TestCreateItem_DuplicateName verifies the 409 Conflict response and its
// exact detail message.
func TestCreateItem_DuplicateName(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, _ int64, _ models.ItemCreate) (models.Item, error) {
			return models.Item{}, store.ErrItemNameAlreadyExists
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodPost, "/items", jsonBody(t, models.ItemCreate{Name: "Book"}))

	require.Equal(t, http.StatusConflict, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Item with name 'Book' already exists", apiErr.Detail)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

// TestCreateItem_ValidationFailures verifies the 422 taxonomy for bad item
// payloads.
func TestCreateItem_ValidationFailures(t *testing.T) {
	longName := strings.Repeat("n", 101)
	longDescription := strings.Repeat("d", 1001)

	tests := []struct {
		name string
		body string
	}{
		{"empty name", jsonBody(t, models.ItemCreate{Name: ""})},
		{"name too long", jsonBody(t, models.ItemCreate{Name: longName})},
		{"description too long", jsonBody(t, models.ItemCreate{Name: "Book", Description: &longDescription})},
		{"malformed json", "{broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, passThroughAuth(), &mockItemService{})
			rec := doItemsRequest(t, h, http.MethodPost, "/items", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		})
	}
}

// ─────────────────────────────────────────────
// getItem
// ─────────────────────────────────────────────

// TestGetItem_Success verifies the 200 response for an owned item.
func TestGetItem_Success(t *testing.T) {
	items := &mockItemService{
		getItemFn: func(_ context.Context, id, ownerID int64) (models.Item, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, authedUser.ID, ownerID)
			return models.Item{ID: id, Name: "Book", OwnerID: ownerID}, nil
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodGet, "/items/3", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var item models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, int64(3), item.ID)
}

// TestGetItem_NotFound verifies the 404 response and its exact detail
// message. An item of another owner behaves identically.
func TestGetItem_NotFound(t *testing.T) {
	items := &mockItemService{
		getItemFn: func(_ context.Context, _, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}

	h := newTestHandler(t, passThroughAuth(), items)
	rec := doItemsRequest(t, h, http.MethodGet, "/items/99999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Item with ID 99999 not found", apiErr.Detail)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

// TestGetItem_NonNumericID verifies the 422 response for a path id that is
// not an integer.
func TestGetItem_NonNumericID(t *testing.T) {
	h := newTestHandler(t, passThroughAuth(), &mockItemService{})
	rec := doItemsRequest(t, h, http.MethodGet, "/items/abc", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Invalid item ID", apiErr.Detail)
}
