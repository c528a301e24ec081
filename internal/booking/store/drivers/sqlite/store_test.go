package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/store"
	"github.com/smartappointment/booking/internal/booking/store/drivers/sqlite"
	"github.com/smartappointment/booking/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newIdentity(t *testing.T, st store.Store, email string) domain.Identity {
	t.Helper()

	ident := domain.Identity{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		Role:         domain.RoleCustomer,
		Active:       true,
	}
	require.NoError(t, st.Identities().Create(context.Background(), ident))
	return ident
}

func TestIdentitiesUniqueness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)

	first := newIdentity(t, st, "a@example.com")

	t.Run("duplicate email maps to ErrAlreadyExists", func(t *testing.T) {
		dup := first
		dup.ID = idx.New().String()
		require.ErrorIs(t, st.Identities().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("duplicate phone maps to ErrAlreadyExists", func(t *testing.T) {
		one := domain.Identity{
			ID: idx.New().String(), Name: "B", Email: "b@example.com",
			PasswordHash: "x", Phone: "+61412345678", Role: domain.RoleCustomer, Active: true,
		}
		require.NoError(t, st.Identities().Create(ctx, one))

		two := one
		two.ID = idx.New().String()
		two.Email = "c@example.com"
		require.ErrorIs(t, st.Identities().Create(ctx, two), store.ErrAlreadyExists)
	})

	t.Run("empty phones do not collide", func(t *testing.T) {
		for _, email := range []string{"d@example.com", "e@example.com"} {
			ident := domain.Identity{
				ID: idx.New().String(), Name: "X", Email: email,
				PasswordHash: "x", Role: domain.RoleCustomer, Active: true,
			}
			require.NoError(t, st.Identities().Create(ctx, ident))
		}
	})

	t.Run("lookup by email and phone", func(t *testing.T) {
		got, err := st.Identities().GetByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.Equal(t, first.ID, got.ID)

		_, err = st.Identities().GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err = st.Identities().GetByPhone(ctx, "+61412345678")
		require.NoError(t, err)
		require.Equal(t, "b@example.com", got.Email)
	})
}

func TestAppointmentOverlap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	owner := newIdentity(t, st, "owner@example.com")

	slot := func(h, m int) time.Time {
		return time.Date(2024, 1, 10, h, m, 0, 0, time.UTC)
	}

	appt := domain.Appointment{
		ID:          idx.New().String(),
		OwnerID:     owner.ID,
		ServiceID:   1,
		ServiceName: "Service 1",
		StartAt:     slot(9, 0),
		EndAt:       slot(9, 30),
		Status:      domain.StatusScheduled,
	}
	require.NoError(t, st.Appointments().Create(ctx, appt))

	t.Run("same interval overlaps", func(t *testing.T) {
		exists, err := st.Appointments().ExistsOverlapping(ctx, slot(9, 0), slot(9, 30))
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("partial overlap counts", func(t *testing.T) {
		exists, err := st.Appointments().ExistsOverlapping(ctx, slot(9, 15), slot(9, 45))
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		exists, err := st.Appointments().ExistsOverlapping(ctx, slot(9, 30), slot(10, 0))
		require.NoError(t, err)
		require.False(t, exists)

		exists, err = st.Appointments().ExistsOverlapping(ctx, slot(8, 30), slot(9, 0))
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("cancelled appointments do not block", func(t *testing.T) {
		require.NoError(t, st.Appointments().UpdateStatus(ctx, appt.ID, domain.StatusCancelled))

		exists, err := st.Appointments().ExistsOverlapping(ctx, slot(9, 0), slot(9, 30))
		require.NoError(t, err)
		require.False(t, exists)

		// Slot is bookable again after cancellation.
		again := appt
		again.ID = idx.New().String()
		require.NoError(t, st.Appointments().Create(ctx, again))
	})

	t.Run("duplicate scheduled slot is rejected by the index", func(t *testing.T) {
		dup := appt
		dup.ID = idx.New().String()
		require.ErrorIs(t, st.Appointments().Create(ctx, dup), store.ErrAlreadyExists)
	})
}

func TestAppointmentListings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	owner := newIdentity(t, st, "lists@example.com")
	other := newIdentity(t, st, "other@example.com")

	mk := func(ownerID string, day, hour int) domain.Appointment {
		start := time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
		appt := domain.Appointment{
			ID:          idx.New().String(),
			OwnerID:     ownerID,
			ServiceID:   1,
			ServiceName: "Service 1",
			StartAt:     start,
			EndAt:       start.Add(30 * time.Minute),
			Status:      domain.StatusScheduled,
		}
		require.NoError(t, st.Appointments().Create(ctx, appt))
		return appt
	}

	early := mk(owner.ID, 10, 9)
	late := mk(owner.ID, 12, 9)
	mk(other.ID, 11, 9)

	t.Run("ListByOwner is start descending", func(t *testing.T) {
		got, err := st.Appointments().ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, late.ID, got[0].ID)
		require.Equal(t, early.ID, got[1].ID)
	})

	t.Run("ListByOwnerFrom filters and ascends", func(t *testing.T) {
		from := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
		got, err := st.Appointments().ListByOwnerFrom(ctx, owner.ID, from)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, late.ID, got[0].ID)
	})

	t.Run("ListByOwnerFrom excludes cancelled, ListByOwner keeps them", func(t *testing.T) {
		require.NoError(t, st.Appointments().UpdateStatus(ctx, late.ID, domain.StatusCancelled))

		got, err := st.Appointments().ListByOwnerFrom(ctx, owner.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, early.ID, got[0].ID)

		all, err := st.Appointments().ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("UpdateStatus on unknown id is ErrNotFound", func(t *testing.T) {
		err := st.Appointments().UpdateStatus(ctx, idx.New().String(), domain.StatusCancelled)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		ident := domain.Identity{
			ID: idx.New().String(), Name: "T", Email: "tx@example.com",
			PasswordHash: "x", Role: domain.RoleCustomer, Active: true,
		}
		if err := tx.Identities().Create(ctx, ident); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = st.Identities().GetByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
