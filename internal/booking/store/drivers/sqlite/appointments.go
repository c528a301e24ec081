package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/store"
)

type appointmentsRepo struct {
	db dbtx
}

const appointmentColumns = `id, owner_id, service_id, service_name, start_at, end_at, status, created_at, updated_at`

func scanAppointment(scan func(...any) error) (domain.Appointment, error) {
	var (
		appt                        domain.Appointment
		status                      string
		startAt, endAt, created, up int64
	)
	err := scan(
		&appt.ID, &appt.OwnerID, &appt.ServiceID, &appt.ServiceName,
		&startAt, &endAt, &status, &created, &up,
	)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}

	appt.StartAt = time.Unix(startAt, 0).UTC()
	appt.EndAt = time.Unix(endAt, 0).UTC()
	appt.Status = domain.Status(status)
	appt.CreatedAt = time.Unix(created, 0).UTC()
	appt.UpdatedAt = time.Unix(up, 0).UTC()
	return appt, nil
}

func collectAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	defer func() { _ = rows.Close() }()

	var out []domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	return out, rows.Err()
}

func (r *appointmentsRepo) Create(ctx context.Context, appt domain.Appointment) error {
	created := appt.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	updated := appt.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, owner_id, service_id, service_name, start_at, end_at, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		appt.ID, appt.OwnerID, appt.ServiceID, appt.ServiceName,
		appt.StartAt.Unix(), appt.EndAt.Unix(), string(appt.Status),
		created.Unix(), updated.Unix(),
	)
	return mapConstraint(err)
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id)
	return scanAppointment(row.Scan)
}

func (r *appointmentsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE owner_id = ? ORDER BY start_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *appointmentsRepo) ListByOwnerFrom(ctx context.Context, ownerID string, from time.Time) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE owner_id = ? AND status = ? AND start_at >= ?
		 ORDER BY start_at ASC`,
		ownerID, string(domain.StatusScheduled), from.Unix())
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *appointmentsRepo) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	// Half-open intervals: [a, b) and [c, d) overlap iff a < d AND b > c.
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE status = ? AND start_at < ? AND end_at > ?
		)`,
		string(domain.StatusScheduled), end.Unix(), start.Unix()).Scan(&exists)
	return exists, err
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Unix(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected turns a zero-row UPDATE into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
