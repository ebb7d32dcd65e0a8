package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
)

// HTTPClientConfig configures the HTTP implementation of [APIClient].
type HTTPClientConfig struct {
	// BaseURL is the root address of the items-api server,
	// e.g. "http://localhost:8080". A bare host:port is accepted.
	BaseURL string

	// Timeout bounds every request issued by the client.
	Timeout time.Duration
}

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api client base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held by
// the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIClient]. It POSTs the credentials to
// POST /auth/register and decodes the created user from the response body.
func (h *httpAPIClient) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&createdUser).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return createdUser, nil
}

// Login implements [APIClient]. It POSTs the credentials to POST /auth/login,
// stores the issued bearer token via SetToken, and returns the full token
// response.
func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResponse).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(tokenResponse.AccessToken)
	return tokenResponse, nil
}

// ListItems implements [APIClient]. It GETs /items with the stored bearer
// token.
func (h *httpAPIClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&items).
		Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem implements [APIClient]. It POSTs the item payload to /items with
// the stored bearer token.
func (h *httpAPIClient) CreateItem(ctx context.Context, request models.ItemCreate) (models.Item, error) {
	var createdItem models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(request).
		SetResult(&createdItem).
		Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return createdItem, nil
}

// GetItem implements [APIClient]. It GETs /items/{id} with the stored bearer
// token.
func (h *httpAPIClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&item).
		Get("/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}
