package http

import (
	"net/http"
	"time"

	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/pkg/bookingsdk"
	"github.com/smartappointment/booking/pkg/httpx"
)

const dateLayout = "2006-01-02"

type SlotsHandler struct {
	SchedulingService *service.SchedulingService
}

// ServeHTTP lists the free slots of one day.
//
//	@Summary		List available slots
//	@Description	Returns the slot starts of the given day with no overlapping SCHEDULED appointment, ascending.
//	@Tags			Scheduling
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string						true	"Day to query, formatted YYYY-MM-DD"
//	@Success		200		{object}	bookingsdk.SlotsResponse	"Free slot starts"
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Missing or malformed date"
//	@Failure		401		{object}	bookingsdk.ErrorResponse	"Invalid or missing token"
//	@Router			/v1/slots [get].
func (h *SlotsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		httpx.WriteError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	slots, err := h.SchedulingService.AvailableSlots(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if slots == nil {
		slots = []time.Time{}
	}

	httpx.WriteJSON(w, http.StatusOK, bookingsdk.SlotsResponse{
		Date:  raw,
		Slots: slots,
	})
}
