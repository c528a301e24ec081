package http

import (
	"errors"
	"net/http"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/pkg/httpx"
	"github.com/smartappointment/booking/pkg/slogx"
)

// writeServiceError maps service error kinds onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body; the detail goes to the log only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthentication):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAuthorization):
		httpx.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// resolveCaller turns the verified token subject into a stored identity. The
// subject is advisory until this lookup succeeds; ownership decisions are
// made against the returned record, never the claims.
func resolveCaller(w http.ResponseWriter, r *http.Request, identity *service.IdentityService) (domain.Identity, bool) {
	subject, ok := httpx.SubjectFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return domain.Identity{}, false
	}

	ident, err := identity.Lookup(r.Context(), subject)
	if err != nil {
		writeServiceError(w, r, err)
		return domain.Identity{}, false
	}
	return ident, true
}
