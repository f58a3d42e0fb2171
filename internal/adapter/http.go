package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter] via POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": user.Login, "password": user.Password}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// CreateSecuredEntity implements [ServerAdapter]. Links go as JSON, files as
// a multipart "file" part.
func (h *httpServerAdapter) CreateSecuredEntity(ctx context.Context, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error) {
	var entity models.SecuredEntityResponse

	req := h.authedRequest(ctx).SetResult(&entity)
	if request.File != nil {
		req.SetFileReader("file", request.File.Name, request.File.Content)
	} else {
		req.SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"url": request.URL})
	}

	resp, err := req.Post("/api/secure-url/")
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("create secured entity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecuredEntityResponse{}, err
	}

	return entity, nil
}

// ListSecuredEntities implements [ServerAdapter] via GET /api/secure-url/.
func (h *httpServerAdapter) ListSecuredEntities(ctx context.Context) ([]models.SecuredEntityResponse, error) {
	var entities []models.SecuredEntityResponse

	resp, err := h.authedRequest(ctx).SetResult(&entities).Get("/api/secure-url/")
	if err != nil {
		return nil, fmt.Errorf("list secured entities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entities, nil
}

// GetSecuredEntity implements [ServerAdapter] via GET /api/secure-url/{id}/.
func (h *httpServerAdapter) GetSecuredEntity(ctx context.Context, id string) (models.SecuredEntityResponse, error) {
	var entity models.SecuredEntityResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&entity).
		Get("/api/secure-url/{id}/")
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("get secured entity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecuredEntityResponse{}, err
	}

	return entity, nil
}

// RegeneratePassword implements [ServerAdapter] via
// POST /api/secure-url/{id}/regenerate-password/.
func (h *httpServerAdapter) RegeneratePassword(ctx context.Context, id string) (models.SecuredEntityResponse, error) {
	var entity models.SecuredEntityResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&entity).
		Post("/api/secure-url/{id}/regenerate-password/")
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("regenerate password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecuredEntityResponse{}, err
	}

	return entity, nil
}

// Access implements [ServerAdapter] via POST /api/secure-url/{id}/access/.
func (h *httpServerAdapter) Access(ctx context.Context, id string, password string) (models.AccessGrant, error) {
	var grant models.AccessGrant

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.AccessRequest{Password: &password}).
		SetResult(&grant).
		Post("/api/secure-url/{id}/access/")
	if err != nil {
		return models.AccessGrant{}, fmt.Errorf("access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessGrant{}, err
	}

	return grant, nil
}

// Stats implements [ServerAdapter] via GET /api/secure-url/stats/.
func (h *httpServerAdapter) Stats(ctx context.Context) (models.Stats, error) {
	stats := models.Stats{}

	resp, err := h.authedRequest(ctx).SetResult(&stats).Get("/api/secure-url/stats/")
	if err != nil {
		return nil, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return stats, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
