package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
)

type identitiesRepo struct {
	db dbtx
}

const identityColumns = `id, name, email, password_hash, phone, role, active, created_at, updated_at`

func (r *identitiesRepo) scanIdentity(row *sql.Row) (domain.Identity, error) {
	var (
		ident              domain.Identity
		phone              sql.NullString
		role               string
		createdAt, updated int64
	)
	err := row.Scan(
		&ident.ID, &ident.Name, &ident.Email, &ident.PasswordHash,
		&phone, &role, &ident.Active, &createdAt, &updated,
	)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}

	ident.Phone = mapNullString(phone)
	ident.Role = domain.Role(role)
	ident.CreatedAt = time.Unix(createdAt, 0).UTC()
	ident.UpdatedAt = time.Unix(updated, 0).UTC()
	return ident, nil
}

func (r *identitiesRepo) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE id = ?`, id)
	return r.scanIdentity(row)
}

func (r *identitiesRepo) GetByEmail(ctx context.Context, email string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE email = ?`, email)
	return r.scanIdentity(row)
}

func (r *identitiesRepo) GetByPhone(ctx context.Context, phone string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE phone = ?`, phone)
	return r.scanIdentity(row)
}

func (r *identitiesRepo) Create(ctx context.Context, ident domain.Identity) error {
	created := ident.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	updated := ident.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO identities (id, name, email, password_hash, phone, role, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ident.ID, ident.Name, ident.Email, ident.PasswordHash,
		mapStringNull(ident.Phone), string(ident.Role), ident.Active,
		created.Unix(), updated.Unix(),
	)
	return mapConstraint(err)
}

func (r *identitiesRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM identities WHERE email = ?)`, email).Scan(&exists)
	return exists, err
}

func (r *identitiesRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM identities WHERE phone = ?)`, phone).Scan(&exists)
	return exists, err
}

func (r *identitiesRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE identities SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC().Unix(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *identitiesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM identities`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
