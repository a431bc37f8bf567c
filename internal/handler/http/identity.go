package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/internal/utils"
)

// current returns the profile of the identity the bearer token belongs to.
// An identity that no longer exists is reported as 401, like a bad token.
func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identityID, ok := utils.IdentityIDFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		unauthorized(w)
		return
	}

	profile, err := h.services.IdentityService.Current(ctx, identityID)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			log.Warn().Err(err).Str("identity_id", identityID).Msg("token subject does not exist")
			unauthorized(w)
			return
		}
		log.Err(err).Str("identity_id", identityID).Msg("error loading current identity")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing current identity response")
	}
}
