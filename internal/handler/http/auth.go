package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/utils"
	"github.com/MKhiriev/go-foodmap/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, log, err)
		return
	}

	token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, log, err, "registration failed")
		return
	}

	if _, err = utils.WriteJSON(w, models.NewTokenResponse(token), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, log, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, log, err, "login failed")
		return
	}

	log.Debug().Str("identity_id", token.IdentityID).Msg("identity logged in")
	if _, err = utils.WriteJSON(w, models.NewTokenResponse(token), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
