package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/utils"
	"github.com/MKhiriev/go-foodmap/models"
)

const (
	registerPath = "/api/users/register"
	loginPath    = "/api/users/login"
	currentPath  = "/api/users/current"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the base URL in adapterCfg.HTTPAddress. A missing
// scheme defaults to http.
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

func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs req to /api/users/register and keeps the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	return h.authenticate(ctx, registerPath, req)
}

// Login POSTs req to /api/users/login and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	return h.authenticate(ctx, loginPath, req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) error {
	var answer models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&answer).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(answer.Token)
	if !answer.Success || err != nil {
		return fmt.Errorf("%s: %w", path, ErrMalformedAnswer)
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("token stored")
	return nil
}

// Current GETs /api/users/current with the stored token.
func (h *httpServerAdapter) Current(ctx context.Context) (models.Profile, error) {
	token := h.Token()
	if token == "" {
		return models.Profile{}, ErrNoToken
	}

	var profile models.Profile
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get(currentPath)
	if err != nil {
		return models.Profile{}, fmt.Errorf("current request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}
