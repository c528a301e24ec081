package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/internal/booking/store"
	"github.com/smartappointment/booking/internal/booking/store/drivers/sqlite"
	"github.com/smartappointment/booking/pkg/cryptox"
	"github.com/smartappointment/booking/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "booking-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newIdentityService(t *testing.T, st store.Store) *service.IdentityService {
	t.Helper()

	h, err := jwtx.NewHS256([]byte("test-secret-test-secret-test-sec"), testIssuer)
	require.NoError(t, err)

	return &service.IdentityService{
		Store:    st,
		Signer:   h,
		Verifier: h,
		Issuer:   testIssuer,
		TokenTTL: time.Hour,
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newIdentityService(t, st)

	t.Run("stores a verifier, never the plaintext", func(t *testing.T) {
		ident, err := svc.Register(ctx, "Admin User", "admin@example.com", "Str0ng!Pw", "")
		require.NoError(t, err)

		require.NotEqual(t, "Str0ng!Pw", ident.PasswordHash)
		require.NotContains(t, ident.PasswordHash, "Str0ng!Pw")
		require.NoError(t, cryptox.VerifyPassword("Str0ng!Pw", ident.PasswordHash))

		require.Equal(t, domain.RoleCustomer, ident.Role)
		require.True(t, ident.Active)
		require.NotEmpty(t, ident.ID)
	})

	t.Run("normalizes email and rejects duplicates case-insensitively", func(t *testing.T) {
		ident, err := svc.Register(ctx, "A", "Mixed.Case@Example.COM", "Str0ng!Pw", "")
		require.NoError(t, err)
		require.Equal(t, "mixed.case@example.com", ident.Email)

		_, err = svc.Register(ctx, "B", "mixed.case@example.com", "Str0ng!Pw", "")
		require.ErrorIs(t, err, service.ErrValidation)
		require.Contains(t, err.Error(), "email already registered")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.Register(ctx, "A", "not-an-email", "Str0ng!Pw", "")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("enforces the strength policy", func(t *testing.T) {
		for _, password := range []string{
			"Sh0rt!",      // too short
			"alllower1!",  // no uppercase
			"ALLUPPER1!",  // no lowercase
			"NoDigits!!",  // no digit
			"NoSymbol123", // no symbol
		} {
			_, err := svc.Register(ctx, "A", "pw@example.com", password, "")
			require.ErrorIs(t, err, service.ErrValidation, "password %q", password)
		}
	})

	t.Run("relaxed policy keeps only the length rule", func(t *testing.T) {
		relaxed := newIdentityService(t, st)
		relaxed.RelaxedPasswords = true

		_, err := relaxed.Register(ctx, "A", "relaxed@example.com", "weakpassword", "")
		require.NoError(t, err)

		_, err = relaxed.Register(ctx, "A", "relaxed2@example.com", "short", "")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("validates and deduplicates phone numbers", func(t *testing.T) {
		_, err := svc.Register(ctx, "A", "phone@example.com", "Str0ng!Pw", "not-a-phone")
		require.ErrorIs(t, err, service.ErrValidation)

		_, err = svc.Register(ctx, "A", "phone@example.com", "Str0ng!Pw", "+61412000111")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "B", "phone2@example.com", "Str0ng!Pw", "+61412000111")
		require.ErrorIs(t, err, service.ErrValidation)
		require.Contains(t, err.Error(), "phone number already registered")
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newIdentityService(t, st)

	registered, err := svc.Register(ctx, "Alice", "alice@example.com", "Str0ng!Pw", "")
	require.NoError(t, err)

	t.Run("issues a verifiable token with advisory claims", func(t *testing.T) {
		token, ident, err := svc.Authenticate(ctx, "alice@example.com", "Str0ng!Pw")
		require.NoError(t, err)
		require.Equal(t, registered.ID, ident.ID)

		claims, err := svc.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
		require.Equal(t, "Alice", claims.Name)
		require.Equal(t, "CUSTOMER", claims.Role)
		require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("accepts any email casing", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "ALICE@Example.com", "Str0ng!Pw")
		require.NoError(t, err)
	})

	t.Run("failure modes are indistinguishable", func(t *testing.T) {
		_, _, wrongPassword := svc.Authenticate(ctx, "alice@example.com", "Wr0ng!Pw")
		_, _, unknownEmail := svc.Authenticate(ctx, "nobody@example.com", "Str0ng!Pw")

		require.ErrorIs(t, wrongPassword, service.ErrAuthentication)
		require.ErrorIs(t, unknownEmail, service.ErrAuthentication)
		require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		require.Equal(t, "invalid credentials", wrongPassword.Error())
	})

	t.Run("inactive identity fails the same way", func(t *testing.T) {
		require.NoError(t, st.Identities().SetActive(ctx, registered.ID, false))
		t.Cleanup(func() {
			require.NoError(t, st.Identities().SetActive(ctx, registered.ID, true))
		})

		_, _, err := svc.Authenticate(ctx, "alice@example.com", "Str0ng!Pw")
		require.ErrorIs(t, err, service.ErrAuthentication)
		require.Equal(t, "invalid credentials", err.Error())
	})
}

func TestResolveIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newIdentityService(t, st)

	registered, err := svc.Register(ctx, "Bob", "bob@example.com", "Str0ng!Pw", "")
	require.NoError(t, err)

	token, _, err := svc.Authenticate(ctx, "bob@example.com", "Str0ng!Pw")
	require.NoError(t, err)

	t.Run("resolves a valid token", func(t *testing.T) {
		ident, err := svc.ResolveIdentity(ctx, token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, ident.ID)
	})

	t.Run("rejects malformed and tampered tokens", func(t *testing.T) {
		_, err := svc.ResolveIdentity(ctx, "garbage")
		require.ErrorIs(t, err, service.ErrAuthentication)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = svc.ResolveIdentity(ctx, tampered)
		require.ErrorIs(t, err, service.ErrAuthentication)
	})

	t.Run("rejects tokens signed by another process", func(t *testing.T) {
		foreign, err := jwtx.NewHS256([]byte("some-other-secret-some-other-sec"), testIssuer)
		require.NoError(t, err)

		raw, err := foreign.Sign(jwtx.NewSessionClaims("bob@example.com", "Bob", "CUSTOMER", testIssuer, time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = svc.ResolveIdentity(ctx, raw)
		require.ErrorIs(t, err, service.ErrAuthentication)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		signer := svc.Signer.(*jwtx.HS256)
		raw, err := signer.Sign(jwtx.NewSessionClaims(
			"bob@example.com", "Bob", "CUSTOMER", testIssuer, time.Hour, time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		_, err = svc.ResolveIdentity(ctx, raw)
		require.ErrorIs(t, err, service.ErrAuthentication)
	})

	t.Run("rejects tokens for deactivated identities", func(t *testing.T) {
		require.NoError(t, st.Identities().SetActive(ctx, registered.ID, false))

		_, err := svc.ResolveIdentity(ctx, token)
		require.ErrorIs(t, err, service.ErrAuthentication)
	})
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("mints the first admin while the store is empty", func(t *testing.T) {
		st := newTestStore(t)
		svc := newIdentityService(t, st)
		boot := &service.BootstrapService{Identity: svc, Store: st, Token: "setup-token"}

		ident, err := boot.Bootstrap(ctx, "setup-token", "Admin User", "admin@example.com", "Str0ng!Pw", "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, ident.Role)

		_, err = boot.Bootstrap(ctx, "setup-token", "Second", "second@example.com", "Str0ng!Pw", "")
		require.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("rejects a wrong bootstrap token", func(t *testing.T) {
		st := newTestStore(t)
		svc := newIdentityService(t, st)
		boot := &service.BootstrapService{Identity: svc, Store: st, Token: "setup-token"}

		_, err := boot.Bootstrap(ctx, "wrong", "Admin", "admin@example.com", "Str0ng!Pw", "")
		require.ErrorIs(t, err, service.ErrAuthorization)
	})

	t.Run("registration after bootstrap never elevates", func(t *testing.T) {
		st := newTestStore(t)
		svc := newIdentityService(t, st)
		boot := &service.BootstrapService{Identity: svc, Store: st}

		_, err := boot.Bootstrap(ctx, "", "Admin", "admin@example.com", "Str0ng!Pw", "")
		require.NoError(t, err)

		ident, err := svc.Register(ctx, "Eve", "eve@example.com", "Str0ng!Pw", "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleCustomer, ident.Role)
	})
}

func TestPasswordHashNeverLeaks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newIdentityService(t, st)

	_, err := svc.Register(ctx, "Carol", "carol@example.com", "Str0ng!Pw", "")
	require.NoError(t, err)

	token, _, err := svc.Authenticate(ctx, "carol@example.com", "Str0ng!Pw")
	require.NoError(t, err)

	// The token must not embed any hash material.
	require.False(t, strings.Contains(token, "argon2id"))
}
