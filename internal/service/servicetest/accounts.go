// Package servicetest provides in-memory collaborators for service tests.
package servicetest

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/repository"
)

// AccountStore is an in-memory repository.AccountRepository with the same
// unique-email behavior as the users table.
type AccountStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Account

	// Err, when set, is returned by every call.
	Err error
}

// NewAccountStore returns an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{byID: map[int64]domain.Account{}}
}

func (s *AccountStore) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.byID {
		if existing.Email == account.Email {
			return repository.ErrConflict
		}
	}
	s.nextID++
	account.ID = s.nextID
	account.CreatedAt = time.Now().UTC()
	s.byID[account.ID] = *account
	return nil
}

func (s *AccountStore) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	account, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

func (s *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, account := range s.byID {
		if account.Email == email {
			return &account, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *AccountStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// Len reports how many accounts are stored.
func (s *AccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
