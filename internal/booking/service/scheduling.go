package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/store"
	"github.com/smartappointment/booking/pkg/idx"
	"github.com/smartappointment/booking/pkg/slogx"
)

// SchedulingService computes availability and performs atomic booking and
// ownership-checked cancellation. Availability is never cached across calls;
// every operation re-reads the store.
type SchedulingService struct {
	Store  store.Store
	Window domain.Window

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time

	// slotLocks serializes check-then-insert per slot start. The store
	// transaction already makes the pair atomic; the lock turns a storage
	// constraint violation into an orderly availability miss for racing
	// callers on the identical interval.
	slotLocks sync.Map // map[int64]*sync.Mutex
}

func (s *SchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *SchedulingService) lockSlot(start time.Time) *sync.Mutex {
	mu, _ := s.slotLocks.LoadOrStore(start.Unix(), &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// AvailableSlots returns the slot starts of the given date with no overlapping
// SCHEDULED appointment, ascending. Deterministic for a given store state.
func (s *SchedulingService) AvailableSlots(ctx context.Context, date time.Time) ([]time.Time, error) {
	var free []time.Time
	for slot := range s.Window.Slots(date) {
		taken, err := s.Store.Appointments().ExistsOverlapping(ctx, slot, slot.Add(s.Window.Slot))
		if err != nil {
			return nil, err
		}
		if !taken {
			free = append(free, slot)
		}
	}
	return free, nil
}

// Book reserves [start, start+slot) for the caller. Exactly one of any set of
// concurrent calls for an overlapping interval succeeds; the rest fail with
// ErrConflict. The caller is resolved from the store, never from token claims.
func (s *SchedulingService) Book(ctx context.Context, callerID string, serviceID int64, start time.Time) (domain.Appointment, error) {
	start = start.UTC()
	end := start.Add(s.Window.Slot)

	mu := s.lockSlot(start)
	mu.Lock()
	defer mu.Unlock()

	var appt domain.Appointment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		caller, err := tx.Identities().GetByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: identity", ErrNotFound)
			}
			return err
		}

		taken, err := tx.Appointments().ExistsOverlapping(ctx, start, end)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: time slot is not available", ErrConflict)
		}

		now := time.Now().UTC().Truncate(time.Second)
		appt = domain.Appointment{
			ID:        idx.New().String(),
			OwnerID:   caller.ID,
			ServiceID: serviceID,
			// TODO: resolve the display name from a service catalog once
			// one exists.
			ServiceName: fmt.Sprintf("Service %d", serviceID),
			StartAt:     start,
			EndAt:       end,
			Status:      domain.StatusScheduled,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := tx.Appointments().Create(ctx, appt); err != nil {
			// The unique slot index catches racers that slipped past the
			// overlap check on another connection.
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: time slot is not available", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment booked",
		slog.String("appointment_id", appt.ID),
		slog.String("owner_id", appt.OwnerID),
		slog.Time("start_at", appt.StartAt),
	)

	return appt, nil
}

// Upcoming returns the caller's SCHEDULED appointments starting at or after
// now, ascending by start.
func (s *SchedulingService) Upcoming(ctx context.Context, callerID string) ([]domain.Appointment, error) {
	if _, err := s.Store.Identities().GetByID(ctx, callerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: identity", ErrNotFound)
		}
		return nil, err
	}
	return s.Store.Appointments().ListByOwnerFrom(ctx, callerID, s.now())
}

// History returns all of the caller's appointments, newest first, including
// cancelled ones. Appointments are never deleted, so this is the audit trail.
func (s *SchedulingService) History(ctx context.Context, callerID string) ([]domain.Appointment, error) {
	if _, err := s.Store.Identities().GetByID(ctx, callerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: identity", ErrNotFound)
		}
		return nil, err
	}
	return s.Store.Appointments().ListByOwner(ctx, callerID)
}

// Cancel transitions the caller's appointment to CANCELLED. Ownership is
// checked against the stored owner reference. Double-cancel is rejected with
// ErrConflict so state drift is surfaced rather than hidden.
func (s *SchedulingService) Cancel(ctx context.Context, callerID, appointmentID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		appt, err := tx.Appointments().GetByID(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: appointment", ErrNotFound)
			}
			return err
		}

		if appt.OwnerID != callerID {
			return fmt.Errorf("%w: not authorized to cancel this appointment", ErrAuthorization)
		}
		if appt.Status == domain.StatusCancelled {
			return fmt.Errorf("%w: appointment already cancelled", ErrConflict)
		}

		return tx.Appointments().UpdateStatus(ctx, appt.ID, domain.StatusCancelled)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("appointment cancelled",
		slog.String("appointment_id", appointmentID),
		slog.String("owner_id", callerID),
	)
	return nil
}
