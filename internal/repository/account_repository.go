package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	db DBTX
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(db DBTX) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, firstname, lastname, email, password, role, created_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO users (firstname, lastname, email, password, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		string(account.Role),
	).Scan(&account.ID, &account.CreatedAt)
	return translate(err)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM users WHERE email=$1`
	return r.scanOne(ctx, query, email)
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var (
		account domain.Account
		role    string
	)
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&role,
		&account.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	account.Role = domain.Role(role)
	return &account, nil
}
