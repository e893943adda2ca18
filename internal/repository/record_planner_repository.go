package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// RecordPlannerRepository manages treatment planner entries.
type RecordPlannerRepository interface {
	Create(ctx context.Context, entry *domain.RecordPlannerEntry) error
	GetByID(ctx context.Context, id int64) (*domain.RecordPlannerEntry, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.RecordPlannerEntry, error)
	Update(ctx context.Context, entry *domain.RecordPlannerEntry) error
	Delete(ctx context.Context, id int64) error
}

type recordPlannerRepository struct {
	db DBTX
}

// NewRecordPlannerRepository constructs repository.
func NewRecordPlannerRepository(db DBTX) RecordPlannerRepository {
	return &recordPlannerRepository{db: db}
}

const plannerSelect = `
        SELECT id, patient_id, title, description, planned_date, completed_date,
               status, priority, created_at, updated_at
        FROM patient_record_planner`

func (r *recordPlannerRepository) Create(ctx context.Context, e *domain.RecordPlannerEntry) error {
	const query = `
        INSERT INTO patient_record_planner
            (patient_id, title, description, planned_date, completed_date, status, priority)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		e.PatientID,
		e.Title,
		e.Description,
		e.PlannedDate,
		e.CompletedDate,
		e.Status,
		e.Priority,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return translate(err)
}

func (r *recordPlannerRepository) GetByID(ctx context.Context, id int64) (*domain.RecordPlannerEntry, error) {
	var e domain.RecordPlannerEntry
	if err := r.db.QueryRow(ctx, plannerSelect+` WHERE id=$1`, id).Scan(plannerTargets(&e)...); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *recordPlannerRepository) ListByPatient(ctx context.Context, patientID int64) ([]domain.RecordPlannerEntry, error) {
	rows, err := r.db.Query(ctx, plannerSelect+` WHERE patient_id=$1 ORDER BY id`, patientID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	entries := []domain.RecordPlannerEntry{}
	for rows.Next() {
		var e domain.RecordPlannerEntry
		if err := rows.Scan(plannerTargets(&e)...); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *recordPlannerRepository) Update(ctx context.Context, e *domain.RecordPlannerEntry) error {
	const query = `
        UPDATE patient_record_planner
        SET title=$1, description=$2, planned_date=$3, completed_date=$4,
            status=$5, priority=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		e.Title,
		e.Description,
		e.PlannedDate,
		e.CompletedDate,
		e.Status,
		e.Priority,
		e.ID,
	).Scan(&e.UpdatedAt)
	return translate(err)
}

func (r *recordPlannerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patient_record_planner WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}

func plannerTargets(e *domain.RecordPlannerEntry) []any {
	return []any{
		&e.ID, &e.PatientID, &e.Title, &e.Description, &e.PlannedDate, &e.CompletedDate,
		&e.Status, &e.Priority, &e.CreatedAt, &e.UpdatedAt,
	}
}
