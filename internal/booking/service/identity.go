package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/store"
	"github.com/smartappointment/booking/pkg/cryptox"
	"github.com/smartappointment/booking/pkg/idx"
	"github.com/smartappointment/booking/pkg/jwtx"
	"github.com/smartappointment/booking/pkg/slogx"
)

const minPasswordLength = 8

var (
	emailRx = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phoneRx = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`) // E.164-ish
)

// IdentityService registers identities, verifies passwords and issues signed
// session tokens. The signing secret arrives via the Signer/Verifier pair
// constructed at startup.
type IdentityService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	// TokenTTL defaults to jwtx.DefaultSessionTTL when zero.
	TokenTTL time.Duration

	// RelaxedPasswords keeps only the minimum-length rule. Some deployments
	// disable the character-class policy.
	RelaxedPasswords bool
}

// CreateParams carries everything needed to mint an identity. Role is
// honoured as given; callers are responsible for authorizing elevated roles
// (self-registration always goes through Register, which forces CUSTOMER).
type CreateParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.Role
}

// Register validates and stores a new self-registered identity. The role is
// always CUSTOMER; elevated roles are only minted via the bootstrap flow.
func (s *IdentityService) Register(ctx context.Context, name, email, password, phone string) (domain.Identity, error) {
	return s.Create(ctx, CreateParams{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
		Role:     domain.RoleCustomer,
	})
}

// Create validates and stores an identity with the given role.
func (s *IdentityService) Create(ctx context.Context, p CreateParams) (domain.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	phone := strings.TrimSpace(p.Phone)

	if !emailRx.MatchString(email) {
		return domain.Identity{}, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if err := s.checkPassword(p.Password); err != nil {
		return domain.Identity{}, err
	}
	if phone != "" && !phoneRx.MatchString(phone) {
		return domain.Identity{}, fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}

	if taken, err := s.Store.Identities().ExistsByEmail(ctx, email); err != nil {
		return domain.Identity{}, err
	} else if taken {
		return domain.Identity{}, fmt.Errorf("%w: email already registered", ErrValidation)
	}
	if phone != "" {
		if taken, err := s.Store.Identities().ExistsByPhone(ctx, phone); err != nil {
			return domain.Identity{}, err
		} else if taken {
			return domain.Identity{}, fmt.Errorf("%w: phone number already registered", ErrValidation)
		}
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Identity{}, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	ident := domain.Identity{
		ID:           idx.New().String(),
		Name:         strings.TrimSpace(p.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		Role:         p.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Identities().Create(ctx, ident); err != nil {
		// Losing a registration race surfaces the same way as the
		// pre-checks above.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Identity{}, fmt.Errorf("%w: email or phone already registered", ErrValidation)
		}
		return domain.Identity{}, err
	}

	slogx.FromContext(ctx).Info("identity registered",
		slog.String("identity_id", ident.ID),
		slog.String("role", string(ident.Role)),
	)

	return ident, nil
}

// Authenticate verifies the password and issues a signed session token. All
// failure modes (unknown email, wrong password, inactive identity) return the
// same bare ErrAuthentication so callers cannot enumerate accounts.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (string, domain.Identity, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	ident, err := s.Store.Identities().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Identity{}, ErrAuthentication
		}
		return "", domain.Identity{}, err
	}

	if err := cryptox.VerifyPassword(password, ident.PasswordHash); err != nil {
		log.Info("authentication failed", slog.String("identity_id", ident.ID))
		return "", domain.Identity{}, ErrAuthentication
	}

	if !ident.Active {
		log.Info("authentication rejected for inactive identity", slog.String("identity_id", ident.ID))
		return "", domain.Identity{}, ErrAuthentication
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(ident.Email, ident.Name, string(ident.Role), s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.Identity{}, err
	}

	return token, ident, nil
}

// Lookup loads an active identity by its normalized email. It is used after
// token verification, when the subject is already trusted.
func (s *IdentityService) Lookup(ctx context.Context, email string) (domain.Identity, error) {
	ident, err := s.Store.Identities().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrAuthentication
		}
		return domain.Identity{}, err
	}
	if !ident.Active {
		return domain.Identity{}, ErrAuthentication
	}
	return ident, nil
}

// ResolveIdentity validates a session token and loads the identity it names.
// Malformed, foreign-signed and expired tokens all come back as
// ErrAuthentication, as does a token for a deactivated identity.
func (s *IdentityService) ResolveIdentity(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.Identity{}, ErrAuthentication
	}
	return s.Lookup(ctx, claims.Subject)
}

func (s *IdentityService) checkPassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	if s.RelaxedPasswords {
		return nil
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return fmt.Errorf(
			"%w: password must contain at least one uppercase letter, one lowercase letter, one number, and one special character",
			ErrValidation,
		)
	}
	return nil
}
