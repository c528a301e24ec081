package domain

import "time"

// Status is the appointment lifecycle state. The only transition is
// SCHEDULED -> CANCELLED; CANCELLED is terminal.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
)

type Appointment struct {
	ID          string
	OwnerID     string // identity id; immutable after creation
	ServiceID   int64
	ServiceName string
	StartAt     time.Time // interval is the half-open [StartAt, EndAt)
	EndAt       time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
