package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockIdentityService struct {
	currentFn func(ctx context.Context, id string) (models.Profile, error)
}

func (m *mockIdentityService) Current(ctx context.Context, id string) (models.Profile, error) {
	return m.currentFn(ctx, id)
}

func claimsFor(id string) models.Claims {
	var c models.Claims
	c.Subject = id
	return c
}

func newTestHandler(auth service.AuthService, identity service.IdentityService) *Handler {
	return &Handler{
		services: &service.Services{AuthService: auth, IdentityService: identity},
		logger:   logger.Nop(),
	}
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	t.Run("rate limit enabled", func(t *testing.T) {
		h := NewHandler(svcs, config.Server{RequestTimeout: time.Second, RateLimitRPS: 5, RateLimitBurst: 10}, log)

		require.NotNil(t, h)
		assert.Same(t, svcs, h.services)
		assert.Same(t, log, h.logger)
		assert.Equal(t, time.Second, h.requestTimeout)
		require.NotNil(t, h.limiter)
		assert.Equal(t, 10, h.limiter.burst)
		assert.False(t, h.trustProxyHeaders)
	})

	t.Run("trusted proxy headers", func(t *testing.T) {
		h := NewHandler(svcs, config.Server{TrustProxyHeaders: true}, log)

		assert.True(t, h.trustProxyHeaders)
	})

	t.Run("rate limit disabled", func(t *testing.T) {
		h := NewHandler(svcs, config.Server{RateLimitRPS: -1}, log)

		assert.Nil(t, h.limiter)
	})
}

func TestInit_RouteRegistration(t *testing.T) {
	h := newTestHandler(
		&mockAuthService{
			registerFn: func(context.Context, models.RegisterRequest) (models.Token, error) {
				return models.Token{SignedString: "r"}, nil
			},
			loginFn: func(context.Context, models.LoginRequest) (models.Token, error) {
				return models.Token{SignedString: "l"}, nil
			},
			parseTokenFn: func(context.Context, string) (models.Claims, error) {
				return claimsFor("id-1"), nil
			},
		},
		&mockIdentityService{currentFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id}, nil
		}},
	)
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "register", method: http.MethodPost, path: "/api/users/register", body: `{}`, wantStatus: http.StatusOK},
		{name: "login", method: http.MethodPost, path: "/api/users/login", body: `{}`, wantStatus: http.StatusOK},
		{name: "current", method: http.MethodGet, path: "/api/users/current", headers: map[string]string{"Authorization": "Bearer t"}, wantStatus: http.StatusOK},
		{name: "current without auth", method: http.MethodGet, path: "/api/users/current", wantStatus: http.StatusUnauthorized},
		{name: "register via GET hidden", method: http.MethodGet, path: "/api/users/register", wantStatus: http.StatusNotFound},
		{name: "current via POST hidden", method: http.MethodPost, path: "/api/users/current", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/users/unknown", wantStatus: http.StatusNotFound},
		{name: "users route status", method: http.MethodGet, path: "/api/users/test", wantStatus: http.StatusOK},
		{name: "users route status via POST hidden", method: http.MethodPost, path: "/api/users/test", wantStatus: http.StatusNotFound},
		{name: "old prefix", method: http.MethodPost, path: "/api/user/login", body: `{}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader), "every response carries a trace id")
		})
	}
}
