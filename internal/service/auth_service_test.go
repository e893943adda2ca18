package service_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/config"
	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/service"
	"github.com/spec-kit/dental-records/internal/service/servicetest"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

type authFixture struct {
	svc      *service.AuthService
	accounts *servicetest.AccountStore
	redis    *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	return newAuthFixtureWithTokens(t, auth.NewTokenGenerator())
}

func newAuthFixtureWithTokens(t *testing.T, tokens auth.TokenGenerator) authFixture {
	t.Helper()
	accounts := servicetest.NewAccountStore()
	sessions, mr := servicetest.NewSessionCache(t)
	svc := service.NewAuthService(
		config.AuthConfig{BcryptCost: bcrypt.MinCost, SessionTTLSeconds: 3600, SessionCookieName: "session_id"},
		service.AuthDependencies{
			Accounts: accounts,
			Sessions: sessions,
			Hasher:   auth.NewBcryptHasher(bcrypt.MinCost),
			Tokens:   tokens,
		},
		nil,
	)
	return authFixture{svc: svc, accounts: accounts, redis: mr}
}

func jane() service.RegisterInput {
	return service.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Password:  "password123",
		Role:      domain.RoleUser,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("returns public view", func(t *testing.T) {
		f := newAuthFixture(t)

		view, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)
		assert.Positive(t, view.ID)
		assert.Equal(t, "Jane", view.FirstName)
		assert.Equal(t, "Doe", view.LastName)
		assert.Equal(t, "jane@x.com", view.Email)
		assert.Equal(t, domain.RoleUser, view.Role)

		stored, err := f.accounts.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
	})

	t.Run("role defaults to user", func(t *testing.T) {
		f := newAuthFixture(t)
		input := jane()
		input.Role = ""

		view, err := f.svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, view.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)

		_, err = f.svc.Register(ctx, jane())
		assert.ErrorIs(t, err, service.ErrDuplicateEmail)
		assert.Equal(t, 1, f.accounts.Len())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*service.RegisterInput)
			field  string
		}{
			{name: "malformed email", mutate: func(in *service.RegisterInput) { in.Email = "jane" }, field: "email"},
			{name: "short password", mutate: func(in *service.RegisterInput) { in.Password = "1234567" }, field: "password"},
			{name: "long password", mutate: func(in *service.RegisterInput) { in.Password = strings.Repeat("a", 101) }, field: "password"},
			{name: "password over 72 bytes", mutate: func(in *service.RegisterInput) { in.Password = strings.Repeat("€", 24) + "x" }, field: "password"},
			{name: "empty first name", mutate: func(in *service.RegisterInput) { in.FirstName = "" }, field: "firstname"},
			{name: "unknown role", mutate: func(in *service.RegisterInput) { in.Role = "root" }, field: "role"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newAuthFixture(t)
				input := jane()
				tt.mutate(&input)

				_, err := f.svc.Register(ctx, input)
				require.Error(t, err)
				domainErr := apperrors.ToDomainError(err)
				assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
				assert.Contains(t, domainErr.Details, tt.field)
				assert.Zero(t, f.accounts.Len())
			})
		}
	})

	t.Run("store failure is not a domain error", func(t *testing.T) {
		f := newAuthFixture(t)
		f.accounts.Err = errors.New("connection reset")

		_, err := f.svc.Register(ctx, jane())
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrDuplicateEmail)
		assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a session resolvable to the account", func(t *testing.T) {
		f := newAuthFixture(t)
		registered, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)

		view, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered, view)
		assert.Len(t, token, auth.SessionTokenLength)

		ttl := f.redis.TTL("session:" + token)
		assert.Equal(t, time.Hour, ttl)

		resolved, err := f.svc.ResolveSession(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, registered, resolved)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)

		_, _, wrongPassword := f.svc.Login(ctx, "jane@x.com", "wrongpass")
		_, _, unknownEmail := f.svc.Login(ctx, "nobody@x.com", "anything")

		assert.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		assert.Empty(t, f.redis.Keys())
	})

	t.Run("each login gets its own session", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)

		_, first, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)
		_, second, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		for _, token := range []string{first, second} {
			_, err := f.svc.ResolveSession(ctx, token)
			assert.NoError(t, err)
		}
	})

	t.Run("uses generated token as cache key", func(t *testing.T) {
		f := newAuthFixtureWithTokens(t, &servicetest.SequenceTokens{Tokens: []string{"tok-1"}})
		registered, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)

		_, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)

		val, err := f.redis.Get("session:tok-1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, mustParseInt(t, val))
	})

	t.Run("cache failure surfaces as infrastructure error", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)
		f.redis.SetError("ERR injected failure")

		_, _, err = f.svc.Login(ctx, "jane@x.com", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	_, err := f.svc.Register(ctx, jane())
	require.NoError(t, err)
	_, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, token))

	_, err = f.svc.ResolveSession(ctx, token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	err = f.svc.Logout(ctx, token)
	assert.ErrorIs(t, err, service.ErrSessionEnded)
	assert.Equal(t, "Session not found or already expired", err.Error())
	assert.Equal(t, "SESSION_NOT_FOUND", apperrors.ToDomainError(err).Code)
	assert.ErrorIs(t, f.svc.Logout(ctx, ""), service.ErrSessionEnded)
}

func TestAuthService_ResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.ResolveSession(ctx, "does-not-exist")
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)
		_, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)

		f.redis.FastForward(f.svc.SessionTTL() + time.Second)

		_, err = f.svc.ResolveSession(ctx, token)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("live session resolves to account not found", func(t *testing.T) {
		f := newAuthFixture(t)
		registered, err := f.svc.Register(ctx, jane())
		require.NoError(t, err)
		_, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteAccount(ctx, registered.ID))

		_, err = f.svc.ResolveSession(ctx, token)
		assert.ErrorIs(t, err, service.ErrAccountNotFound)
		assert.NotErrorIs(t, err, service.ErrSessionNotFound)
		assert.True(t, f.redis.Exists("session:"+token))
	})

	t.Run("missing account", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.ErrorIs(t, f.svc.DeleteAccount(ctx, 42), service.ErrAccountNotFound)
	})
}

func TestAuthService_FullScenario(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	registered, err := f.svc.Register(ctx, jane())
	require.NoError(t, err)

	_, token, err := f.svc.Login(ctx, "jane@x.com", "password123")
	require.NoError(t, err)

	me, err := f.svc.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered, me)

	require.NoError(t, f.svc.Logout(ctx, token))

	_, err = f.svc.ResolveSession(ctx, token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func mustParseInt(t *testing.T, s string) int64 {
	t.Helper()
	v, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return v
}
