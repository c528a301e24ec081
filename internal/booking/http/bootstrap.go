package http

import (
	"encoding/json"
	"net/http"

	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/pkg/bookingsdk"
	"github.com/smartappointment/booking/pkg/httpx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP mints the first admin identity.
//
//	@Summary		Bootstrap the first admin
//	@Description	Creates the initial ADMIN identity. Only works while no identity exists; later calls return 409.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.BootstrapRequest	true	"Admin details and bootstrap token"
//	@Success		201		{object}	bookingsdk.IdentityResponse	"Created admin identity"
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Validation failure"
//	@Failure		403		{object}	bookingsdk.ErrorResponse	"Wrong bootstrap token"
//	@Failure		409		{object}	bookingsdk.ErrorResponse	"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bookingsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident, err := h.BootstrapService.Bootstrap(r.Context(), req.Token, req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, identityResponse(ident))
}
