package http

import (
	"encoding/json"
	"net/http"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/pkg/bookingsdk"
	"github.com/smartappointment/booking/pkg/httpx"
)

func appointmentResponse(appt domain.Appointment) bookingsdk.AppointmentResponse {
	return bookingsdk.AppointmentResponse{
		ID:          appt.ID,
		ServiceID:   appt.ServiceID,
		ServiceName: appt.ServiceName,
		StartAt:     appt.StartAt,
		EndAt:       appt.EndAt,
		Status:      string(appt.Status),
		CreatedAt:   appt.CreatedAt,
	}
}

func appointmentListResponse(appts []domain.Appointment) bookingsdk.AppointmentListResponse {
	out := bookingsdk.AppointmentListResponse{
		Appointments: make([]bookingsdk.AppointmentResponse, 0, len(appts)),
	}
	for _, appt := range appts {
		out.Appointments = append(out.Appointments, appointmentResponse(appt))
	}
	return out
}

type AppointmentsHandler struct {
	IdentityService   *service.IdentityService
	SchedulingService *service.SchedulingService
}

// HandleBook reserves a slot for the caller.
//
//	@Summary		Book an appointment
//	@Description	Atomically reserves the requested slot. Concurrent requests for an overlapping interval yield exactly one success.
//	@Tags			Scheduling
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.BookRequest			true	"Slot to reserve"
//	@Success		201		{object}	bookingsdk.AppointmentResponse	"Created appointment"
//	@Failure		400		{object}	bookingsdk.ErrorResponse		"Malformed request"
//	@Failure		401		{object}	bookingsdk.ErrorResponse		"Invalid or missing token"
//	@Failure		409		{object}	bookingsdk.ErrorResponse		"Slot is not available"
//	@Router			/v1/appointments [post].
func (h *AppointmentsHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	ident, ok := resolveCaller(w, r, h.IdentityService)
	if !ok {
		return
	}

	var req bookingsdk.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StartAt.IsZero() {
		httpx.WriteError(w, http.StatusBadRequest, "start_at is required")
		return
	}

	appt, err := h.SchedulingService.Book(r.Context(), ident.ID, req.ServiceID, req.StartAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, appointmentResponse(appt))
}

// HandleUpcoming lists the caller's future appointments.
//
//	@Summary		List upcoming appointments
//	@Description	Returns the caller's appointments starting at or after now, soonest first.
//	@Tags			Scheduling
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	bookingsdk.AppointmentListResponse	"Upcoming appointments"
//	@Failure		401	{object}	bookingsdk.ErrorResponse			"Invalid or missing token"
//	@Router			/v1/appointments/upcoming [get].
func (h *AppointmentsHandler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	ident, ok := resolveCaller(w, r, h.IdentityService)
	if !ok {
		return
	}

	appts, err := h.SchedulingService.Upcoming(r.Context(), ident.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, appointmentListResponse(appts))
}

// HandleHistory lists all of the caller's appointments.
//
//	@Summary		List appointment history
//	@Description	Returns every appointment the caller has ever held, newest first, including cancelled ones.
//	@Tags			Scheduling
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	bookingsdk.AppointmentListResponse	"Appointment history"
//	@Failure		401	{object}	bookingsdk.ErrorResponse			"Invalid or missing token"
//	@Router			/v1/appointments [get].
func (h *AppointmentsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ident, ok := resolveCaller(w, r, h.IdentityService)
	if !ok {
		return
	}

	appts, err := h.SchedulingService.History(r.Context(), ident.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, appointmentListResponse(appts))
}

// HandleCancel cancels one of the caller's appointments.
//
//	@Summary		Cancel an appointment
//	@Description	Transitions the appointment to CANCELLED. Only the owner may cancel; cancelling twice is a conflict.
//	@Tags			Scheduling
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"Appointment ID"
//	@Success		204	"Cancelled"
//	@Failure		401	{object}	bookingsdk.ErrorResponse	"Invalid or missing token"
//	@Failure		403	{object}	bookingsdk.ErrorResponse	"Not the owner"
//	@Failure		404	{object}	bookingsdk.ErrorResponse	"Unknown appointment"
//	@Failure		409	{object}	bookingsdk.ErrorResponse	"Already cancelled"
//	@Router			/v1/appointments/{id} [delete].
func (h *AppointmentsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ident, ok := resolveCaller(w, r, h.IdentityService)
	if !ok {
		return
	}

	if err := h.SchedulingService.Cancel(r.Context(), ident.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
