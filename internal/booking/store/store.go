package store

import (
	"context"
	"errors"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction entry point so the scheduling engine can make
// its check-then-insert atomic.
type Store interface {
	Identities() Identities
	Appointments() Appointments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Identities is the credential store.
type Identities interface {
	// GetByID returns an identity by id.
	GetByID(ctx context.Context, id string) (domain.Identity, error)

	// GetByEmail looks up by normalized (lower-case) email.
	GetByEmail(ctx context.Context, email string) (domain.Identity, error)

	// GetByPhone looks up by phone number.
	GetByPhone(ctx context.Context, phone string) (domain.Identity, error)

	// Create inserts a new identity (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email or phone is taken.
	Create(ctx context.Context, identity domain.Identity) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// SetActive soft-enables or soft-disables an identity.
	SetActive(ctx context.Context, id string, active bool) error

	// IsEmpty returns true if there are no identities (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

// Appointments is the reservation store.
type Appointments interface {
	// Create inserts a new appointment with its full interval.
	Create(ctx context.Context, appt domain.Appointment) error

	// GetByID returns an appointment by id.
	GetByID(ctx context.Context, id string) (domain.Appointment, error)

	// ListByOwner returns all of an owner's appointments, start descending.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error)

	// ListByOwnerFrom returns the owner's SCHEDULED appointments starting at
	// or after the given instant, start ascending.
	ListByOwnerFrom(ctx context.Context, ownerID string, from time.Time) ([]domain.Appointment, error)

	// ExistsOverlapping reports whether any SCHEDULED appointment's interval
	// overlaps [start, end). Half-open: touching endpoints do not overlap.
	// Run it inside a Tx together with Create to make booking atomic.
	ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error)

	// UpdateStatus sets the status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}
