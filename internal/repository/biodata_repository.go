package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// BiodataRepository manages the one-to-one biodata record of a patient.
type BiodataRepository interface {
	Create(ctx context.Context, biodata *domain.PatientBiodata) error
	GetByPatientID(ctx context.Context, patientID int64) (*domain.PatientBiodata, error)
	Update(ctx context.Context, biodata *domain.PatientBiodata) error
}

type biodataRepository struct {
	db DBTX
}

// NewBiodataRepository constructs repository.
func NewBiodataRepository(db DBTX) BiodataRepository {
	return &biodataRepository{db: db}
}

const biodataColumns = `
        first_name, last_name, date_of_birth, gender, phone, email, address, occupation,
        emergency_contact_name, emergency_contact_phone, medical_history, allergies, medications,
        previous_surgeries, family_medical_history, previous_dental_treatments, gum_disease_history,
        dental_visit_frequency, oral_hygiene_habits, dental_trauma_history, smoking_tobacco_use,
        alcohol_consumption, diet_habits, insurance_provider, insurance_policy_number, consent_forms`

// biodataValues returns the writable columns in biodataColumns order.
func biodataValues(b *domain.PatientBiodata) []any {
	return []any{
		b.FirstName, b.LastName, b.DateOfBirth, b.Gender, b.Phone, b.Email, b.Address, b.Occupation,
		b.EmergencyContactName, b.EmergencyContactPhone, b.MedicalHistory, b.Allergies, b.Medications,
		b.PreviousSurgeries, b.FamilyMedicalHistory, b.PreviousDentalTreatments, b.GumDiseaseHistory,
		b.DentalVisitFrequency, b.OralHygieneHabits, b.DentalTraumaHistory, b.SmokingTobaccoUse,
		b.AlcoholConsumption, b.DietHabits, b.InsuranceProvider, b.InsurancePolicyNumber, b.ConsentForms,
	}
}

func biodataTargets(b *domain.PatientBiodata) []any {
	return []any{
		&b.FirstName, &b.LastName, &b.DateOfBirth, &b.Gender, &b.Phone, &b.Email, &b.Address, &b.Occupation,
		&b.EmergencyContactName, &b.EmergencyContactPhone, &b.MedicalHistory, &b.Allergies, &b.Medications,
		&b.PreviousSurgeries, &b.FamilyMedicalHistory, &b.PreviousDentalTreatments, &b.GumDiseaseHistory,
		&b.DentalVisitFrequency, &b.OralHygieneHabits, &b.DentalTraumaHistory, &b.SmokingTobaccoUse,
		&b.AlcoholConsumption, &b.DietHabits, &b.InsuranceProvider, &b.InsurancePolicyNumber, &b.ConsentForms,
	}
}

func (r *biodataRepository) Create(ctx context.Context, biodata *domain.PatientBiodata) error {
	const query = `
        INSERT INTO patient_biodata (patient_id,` + biodataColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
                $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
        RETURNING id, created_at, updated_at`

	args := append([]any{biodata.PatientID}, biodataValues(biodata)...)
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&biodata.ID, &biodata.CreatedAt, &biodata.UpdatedAt)
	return translate(err)
}

func (r *biodataRepository) GetByPatientID(ctx context.Context, patientID int64) (*domain.PatientBiodata, error) {
	const query = `
        SELECT id, patient_id,` + biodataColumns + `, created_at, updated_at
        FROM patient_biodata WHERE patient_id=$1`

	var b domain.PatientBiodata
	targets := append([]any{&b.ID, &b.PatientID}, biodataTargets(&b)...)
	targets = append(targets, &b.CreatedAt, &b.UpdatedAt)
	if err := r.db.QueryRow(ctx, query, patientID).Scan(targets...); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *biodataRepository) Update(ctx context.Context, biodata *domain.PatientBiodata) error {
	const query = `
        UPDATE patient_biodata SET
            first_name=$2, last_name=$3, date_of_birth=$4, gender=$5, phone=$6, email=$7,
            address=$8, occupation=$9, emergency_contact_name=$10, emergency_contact_phone=$11,
            medical_history=$12, allergies=$13, medications=$14, previous_surgeries=$15,
            family_medical_history=$16, previous_dental_treatments=$17, gum_disease_history=$18,
            dental_visit_frequency=$19, oral_hygiene_habits=$20, dental_trauma_history=$21,
            smoking_tobacco_use=$22, alcohol_consumption=$23, diet_habits=$24,
            insurance_provider=$25, insurance_policy_number=$26, consent_forms=$27,
            updated_at=NOW()
        WHERE patient_id=$1
        RETURNING updated_at`

	args := append([]any{biodata.PatientID}, biodataValues(biodata)...)
	return translate(r.db.QueryRow(ctx, query, args...).Scan(&biodata.UpdatedAt))
}
