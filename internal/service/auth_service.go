package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/config"
	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/repository"
	"github.com/spec-kit/dental-records/internal/validation"
)

// AuthService coordinates registration, login and session lookups. It keeps
// no session state of its own; every session lives in the SessionCache.
type AuthService struct {
	accounts repository.AccountRepository
	sessions auth.SessionCache
	hasher   auth.PasswordHasher
	tokens   auth.TokenGenerator
	ttl      time.Duration
	logger   *zap.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Accounts repository.AccountRepository
	Sessions auth.SessionCache
	Hasher   auth.PasswordHasher
	Tokens   auth.TokenGenerator
}

// RegisterInput describes a signup request.
type RegisterInput struct {
	FirstName string      `json:"firstname" validate:"required,min=1,max=100"`
	LastName  string      `json:"lastname" validate:"required,min=1,max=100"`
	Email     string      `json:"email" validate:"required,email,max=255"`
	Password  string      `json:"password" validate:"required,min=8,max=100,maxbytes=72"`
	Role      domain.Role `json:"role" validate:"omitempty,role"`
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts: deps.Accounts,
		sessions: deps.Sessions,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		ttl:      cfg.SessionTTL(),
		logger:   logger,
	}
}

// SessionTTL is the lifetime given to every new session.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// Register creates a new account and returns its public view.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.AccountView, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Role == "" {
		input.Role = domain.RoleUser
	}

	if _, err := s.accounts.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup account by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account registered", zap.Int64("account_id", account.ID), zap.String("role", string(account.Role)))
	return account.View(), nil
}

// Login checks credentials and opens a new session. Unknown emails and wrong
// passwords fail identically and cost one hash verification each.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AccountView, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("lookup account by email: %w", err)
		}
		s.hasher.Verify(password, s.dummyHash())
		return nil, "", ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	if err := s.sessions.Set(ctx, token, account.ID, s.ttl); err != nil {
		return nil, "", err
	}

	s.logger.Info("session opened", zap.Int64("account_id", account.ID))
	return account.View(), token, nil
}

// Logout revokes the session immediately. An unknown or expired token fails
// with ErrSessionEnded.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionEnded
	}
	existed, err := s.sessions.Delete(ctx, token)
	if err != nil {
		return err
	}
	if !existed {
		return ErrSessionEnded
	}
	return nil
}

// ResolveSession returns the account a live session belongs to. A session
// that outlived its account fails with ErrAccountNotFound.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.AccountView, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	accountID, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	return account.View(), nil
}

// DeleteAccount hard-deletes the account. Outstanding sessions are left to
// expire and resolve to ErrAccountNotFound meanwhile.
func (s *AuthService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}
	s.logger.Info("account deleted", zap.Int64("account_id", accountID))
	return nil
}

// dummyHash is a digest produced at the configured cost that no login
// password is expected to match.
func (s *AuthService) dummyHash() string {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash("dental-records-unknown-account")
		if err != nil {
			s.logger.Warn("dummy digest unavailable", zap.Error(err))
			return
		}
		s.dummyDigest = digest
	})
	return s.dummyDigest
}
