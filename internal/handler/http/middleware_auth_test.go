package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-foodmap/internal/crypto"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/internal/utils"
	"github.com/MKhiriev/go-foodmap/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	parseToken := func(_ context.Context, token string) (models.Claims, error) {
		switch token {
		case "good":
			return claimsFor("id-1"), nil
		case "expired":
			return models.Claims{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, crypto.ErrTokenExpired)
		default:
			return models.Claims{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, crypto.ErrTokenMalformed)
		}
	}

	tests := []struct {
		name           string
		header         string
		wantStatus     int
		wantNextCalled bool
		wantIdentityID string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantNextCalled: true, wantIdentityID: "id-1"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantNextCalled: true, wantIdentityID: "id-1"},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "raw token without scheme", header: "good", wantStatus: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer expired", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{parseTokenFn: parseToken}, nil)

			var nextCalled bool
			var gotID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotID, _ = utils.IdentityIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantIdentityID, gotID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized\n", rr.Body.String(), "rejections share one body")
			}
		})
	}
}
