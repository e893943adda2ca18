package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// VisitRepository manages visit history.
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.Visit, error)
	Update(ctx context.Context, visit *domain.Visit) error
	Delete(ctx context.Context, id int64) error
}

type visitRepository struct {
	db DBTX
}

// NewVisitRepository constructs repository.
func NewVisitRepository(db DBTX) VisitRepository {
	return &visitRepository{db: db}
}

const visitSelect = `
        SELECT id, patient_id, visit_date, visit_type, chief_complaint, examination_notes,
               diagnosis, treatment_plan, treatment_performed, next_appointment,
               created_at, updated_at
        FROM visits`

func (r *visitRepository) Create(ctx context.Context, v *domain.Visit) error {
	const query = `
        INSERT INTO visits (patient_id, visit_date, visit_type, chief_complaint, examination_notes,
                            diagnosis, treatment_plan, treatment_performed, next_appointment)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		v.PatientID,
		v.VisitDate,
		v.VisitType,
		v.ChiefComplaint,
		v.ExaminationNotes,
		v.Diagnosis,
		v.TreatmentPlan,
		v.TreatmentPerformed,
		v.NextAppointment,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return translate(err)
}

func (r *visitRepository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	var v domain.Visit
	if err := r.db.QueryRow(ctx, visitSelect+` WHERE id=$1`, id).Scan(visitTargets(&v)...); err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// ListByPatient returns visits newest first.
func (r *visitRepository) ListByPatient(ctx context.Context, patientID int64) ([]domain.Visit, error) {
	rows, err := r.db.Query(ctx, visitSelect+` WHERE patient_id=$1 ORDER BY visit_date DESC, id DESC`, patientID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	visits := []domain.Visit{}
	for rows.Next() {
		var v domain.Visit
		if err := rows.Scan(visitTargets(&v)...); err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *visitRepository) Update(ctx context.Context, v *domain.Visit) error {
	const query = `
        UPDATE visits
        SET visit_date=$1, visit_type=$2, chief_complaint=$3, examination_notes=$4, diagnosis=$5,
            treatment_plan=$6, treatment_performed=$7, next_appointment=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		v.VisitDate,
		v.VisitType,
		v.ChiefComplaint,
		v.ExaminationNotes,
		v.Diagnosis,
		v.TreatmentPlan,
		v.TreatmentPerformed,
		v.NextAppointment,
		v.ID,
	).Scan(&v.UpdatedAt)
	return translate(err)
}

func (r *visitRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM visits WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}

func visitTargets(v *domain.Visit) []any {
	return []any{
		&v.ID, &v.PatientID, &v.VisitDate, &v.VisitType, &v.ChiefComplaint, &v.ExaminationNotes,
		&v.Diagnosis, &v.TreatmentPlan, &v.TreatmentPerformed, &v.NextAppointment,
		&v.CreatedAt, &v.UpdatedAt,
	}
}
