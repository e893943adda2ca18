package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// PatientRepository manages patient rows.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Patient, error)
	Delete(ctx context.Context, id int64) error
}

type patientRepository struct {
	db DBTX
}

// NewPatientRepository constructs repository.
func NewPatientRepository(db DBTX) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	const query = `
        INSERT INTO patients (user_id)
        VALUES ($1)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, patient.UserID).
		Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	return translate(err)
}

func (r *patientRepository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	const query = `
        SELECT id, user_id, created_at, updated_at
        FROM patients WHERE id=$1`
	var p domain.Patient
	if err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *patientRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Patient, error) {
	const query = `
        SELECT id, user_id, created_at, updated_at
        FROM patients WHERE user_id=$1
        ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}
