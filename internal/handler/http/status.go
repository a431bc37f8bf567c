package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/utils"
)

const msgUsersRoute = "This is the users route"

type statusResponse struct {
	Msg string `json:"msg"`
}

// usersStatus answers a fixed message so probes can check the users routes
// are mounted.
func (h *Handler) usersStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, statusResponse{Msg: msgUsersRoute}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status response")
	}
}
