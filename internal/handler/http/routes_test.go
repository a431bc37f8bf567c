package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/crypto"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "routes-test-sign-key"
	testIssuer  = "go-foodmap-test"
)

// newTestRouter wires the full stack over an in-memory SQLite database.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithLogger(t, logger.Nop())
}

func newTestRouterWithLogger(t *testing.T, log *logger.Logger) http.Handler {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{DSN: "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Hour,
		PasswordHashCost: 4,
	}, log)

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second, RateLimitRPS: -1}, log).Init()
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	return got
}

const registerBody = `{"firstName":"Ada","lastName":"Lovelace","email":"a@x.com","password":"correct horse"}`

func TestRoutes_RegisterTwice(t *testing.T) {
	router := newTestRouter(t)

	first := doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	got := decodeBody(t, first.Body.Bytes())
	assert.Equal(t, true, got["success"])
	assert.True(t, strings.HasPrefix(got["token"].(string), models.BearerPrefix))

	second := doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, map[string]any{"email": service.MsgEmailAlreadyRegistered}, decodeBody(t, second.Body.Bytes()))
}

func TestRoutes_RegisterInvalidEmail(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/api/users/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email","password":"pw"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr.Body.Bytes()), "email")

	retry := doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil)
	assert.Equal(t, http.StatusOK, retry.Code, "rejected payload left no state behind")
}

func TestRoutes_LoginAndCurrent(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil).Code)

	login := doRequest(t, router, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"correct horse"}`, nil)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())
	bearer := decodeBody(t, login.Body.Bytes())["token"].(string)

	current := doRequest(t, router, http.MethodGet, "/api/users/current", "", map[string]string{"Authorization": bearer})
	require.Equal(t, http.StatusOK, current.Code, current.Body.String())

	var profile models.Profile
	require.NoError(t, json.Unmarshal(current.Body.Bytes(), &profile))
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Ada Lovelace", profile.Handle)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.NotContains(t, current.Body.String(), "correct horse")
	assert.NotContains(t, current.Body.String(), "$2a$")
}

func TestRoutes_LoginFailures(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil).Code)

	unknown := doRequest(t, router, http.MethodPost, "/api/users/login", `{"email":"b@x.com","password":"correct horse"}`, nil)
	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Equal(t, map[string]any{"email": service.MsgIdentityNotFound}, decodeBody(t, unknown.Body.Bytes()))

	for range 3 {
		wrong := doRequest(t, router, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"wrong"}`, nil)
		assert.Equal(t, http.StatusBadRequest, wrong.Code)
		assert.Equal(t, map[string]any{"password": service.MsgWrongPassword}, decodeBody(t, wrong.Body.Bytes()))
	}

	malformed := doRequest(t, router, http.MethodPost, "/api/users/login", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
	assert.Equal(t, map[string]any{"body": msgInvalidJSON}, decodeBody(t, malformed.Body.Bytes()))
}

func TestRoutes_CurrentUnauthorized(t *testing.T) {
	router := newTestRouter(t)

	expired, err := crypto.NewTokenIssuer(testSignKey, testIssuer,
		crypto.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }),
	).Issue("some-id", time.Hour)
	require.NoError(t, err)

	foreign, err := crypto.NewTokenIssuer("another-key", testIssuer).Issue("some-id", time.Hour)
	require.NoError(t, err)

	vanished, err := crypto.NewTokenIssuer(testSignKey, testIssuer).Issue("no-such-identity", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "malformed token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: expired.Bearer()},
		{name: "foreign signature", header: foreign.Bearer()},
		{name: "unknown identity", header: vanished.Bearer()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.header != "" {
				headers = map[string]string{"Authorization": tt.header}
			}

			rr := doRequest(t, router, http.MethodGet, "/api/users/current", "", headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRoutes_RateLimit(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.Token, error) {
			return models.Token{SignedString: "jwt"}, nil
		},
	}, nil)
	h.limiter = newIPRateLimiter(0.001, 2)
	router := h.Init()

	for range 2 {
		assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/users/login", `{}`, nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, router, http.MethodPost, "/api/users/login", `{}`, nil).Code)
}

func TestRoutes_RegisterLogsOnceWithoutEmail(t *testing.T) {
	var buf bytes.Buffer
	router := newTestRouterWithLogger(t, logger.NewLogger("test", logger.WithWriter(&buf)))

	rr := doRequest(t, router, http.MethodPost, "/api/users/register", registerBody, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	logs := buf.String()
	assert.Equal(t, 1, strings.Count(logs, `"message":"identity registered"`))
	assert.NotContains(t, logs, "a@x.com")
	assert.NotContains(t, logs, "correct horse")
}
