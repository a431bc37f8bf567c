package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authorization.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken], and on success stores the identity id
// in the request context (see [utils.IdentityIDFromContext]).
//
// Every rejection is answered with the same 401 body; the reason is only
// logged. The next handler is not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w)
			return
		}

		ctx = utils.WithIdentityID(ctx, claims.IdentityID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
