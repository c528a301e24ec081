package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/pkg/bookingsdk"
	"github.com/smartappointment/booking/pkg/httpx"
	"github.com/smartappointment/booking/pkg/jwtx"
)

func identityResponse(ident domain.Identity) bookingsdk.IdentityResponse {
	return bookingsdk.IdentityResponse{
		ID:        ident.ID,
		Name:      ident.Name,
		Email:     ident.Email,
		Phone:     ident.Phone,
		Role:      string(ident.Role),
		CreatedAt: ident.CreatedAt,
	}
}

type RegisterHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP handles customer self-registration.
//
//	@Summary		Register a new identity
//	@Description	Creates a CUSTOMER identity. Email must be unique; the password must satisfy the strength policy.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	bookingsdk.IdentityResponse	"Created identity"
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Validation failure"
//	@Failure		429		{object}	bookingsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bookingsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident, err := h.IdentityService.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, identityResponse(ident))
}

type LoginHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies credentials and issues a bearer session token. All failures return the same 401 body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	bookingsdk.TokenResponse	"Session token"
//	@Failure		401		{object}	bookingsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	bookingsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bookingsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, _, err := h.IdentityService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ttl := h.IdentityService.TokenTTL
	if ttl == 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, bookingsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl / time.Second),
	})
}

type MeHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP returns the identity behind the presented token.
//
//	@Summary		Get current identity
//	@Description	Returns the authenticated caller's identity record.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	bookingsdk.IdentityResponse	"Current identity"
//	@Failure		401	{object}	bookingsdk.ErrorResponse	"Invalid or missing token"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ident, ok := resolveCaller(w, r, h.IdentityService)
	if !ok {
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, identityResponse(ident))
}
