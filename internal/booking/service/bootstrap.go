package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/store"
)

// BootstrapService mints the first ADMIN identity. It only works while the
// credential store is empty, so it cannot be used for privilege escalation
// once the system is live. Self-registration never assigns ADMIN; this is the
// sole elevation path.
type BootstrapService struct {
	Identity *IdentityService
	Store    store.Store

	// Token, when set, must be presented by the caller.
	Token string
}

// Bootstrap creates the initial admin identity.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, name, email, password, phone string) (domain.Identity, error) {
	if s.Token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		return domain.Identity{}, fmt.Errorf("%w: invalid bootstrap token", ErrAuthorization)
	}

	var ident domain.Identity
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Identities().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return fmt.Errorf("%w: system already bootstrapped", ErrConflict)
		}

		// Reuse the identity service's validation and hashing, but write
		// through the transaction so two racing bootstraps cannot both
		// observe an empty store and succeed.
		svc := *s.Identity
		svc.Store = tx

		ident, err = svc.Create(ctx, CreateParams{
			Name:     name,
			Email:    email,
			Password: password,
			Phone:    phone,
			Role:     domain.RoleAdmin,
		})
		return err
	})
	if err != nil {
		// Racing bootstraps can also collide on the unique email index.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Identity{}, fmt.Errorf("%w: system already bootstrapped", ErrConflict)
		}
		return domain.Identity{}, err
	}

	return ident, nil
}
