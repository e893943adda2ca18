package dto

import (
	"time"

	"github.com/spec-kit/dental-records/internal/domain"
)

// CreatePatientRequest payload.
type CreatePatientRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// BiodataFields are the optional biodata attributes shared by create and
// update payloads. A nil field is left unchanged on update.
type BiodataFields struct {
	DateOfBirth              *time.Time `json:"date_of_birth"`
	Gender                   *string    `json:"gender" validate:"omitempty,max=20"`
	Phone                    *string    `json:"phone" validate:"omitempty,max=20"`
	Email                    *string    `json:"email" validate:"omitempty,email,max=255"`
	Address                  *string    `json:"address" validate:"omitempty,max=500"`
	Occupation               *string    `json:"occupation" validate:"omitempty,max=200"`
	EmergencyContactName     *string    `json:"emergency_contact_name" validate:"omitempty,max=100"`
	EmergencyContactPhone    *string    `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	MedicalHistory           *string    `json:"medical_history"`
	Allergies                *string    `json:"allergies"`
	Medications              *string    `json:"medications"`
	PreviousSurgeries        *string    `json:"previous_surgeries"`
	FamilyMedicalHistory     *string    `json:"family_medical_history"`
	PreviousDentalTreatments *string    `json:"previous_dental_treatments"`
	GumDiseaseHistory        *string    `json:"gum_disease_history"`
	DentalVisitFrequency     *string    `json:"dental_visit_frequency" validate:"omitempty,max=100"`
	OralHygieneHabits        *string    `json:"oral_hygiene_habits"`
	DentalTraumaHistory      *string    `json:"dental_trauma_history"`
	SmokingTobaccoUse        *string    `json:"smoking_tobacco_use" validate:"omitempty,max=200"`
	AlcoholConsumption       *string    `json:"alcohol_consumption" validate:"omitempty,max=200"`
	DietHabits               *string    `json:"diet_habits"`
	InsuranceProvider        *string    `json:"insurance_provider" validate:"omitempty,max=200"`
	InsurancePolicyNumber    *string    `json:"insurance_policy_number" validate:"omitempty,max=100"`
	ConsentForms             *string    `json:"consent_forms"`
}

func (f BiodataFields) applyTo(b *domain.PatientBiodata) {
	setTime(&b.DateOfBirth, f.DateOfBirth)
	setString(&b.Gender, f.Gender)
	setString(&b.Phone, f.Phone)
	setString(&b.Email, f.Email)
	setString(&b.Address, f.Address)
	setString(&b.Occupation, f.Occupation)
	setString(&b.EmergencyContactName, f.EmergencyContactName)
	setString(&b.EmergencyContactPhone, f.EmergencyContactPhone)
	setString(&b.MedicalHistory, f.MedicalHistory)
	setString(&b.Allergies, f.Allergies)
	setString(&b.Medications, f.Medications)
	setString(&b.PreviousSurgeries, f.PreviousSurgeries)
	setString(&b.FamilyMedicalHistory, f.FamilyMedicalHistory)
	setString(&b.PreviousDentalTreatments, f.PreviousDentalTreatments)
	setString(&b.GumDiseaseHistory, f.GumDiseaseHistory)
	setString(&b.DentalVisitFrequency, f.DentalVisitFrequency)
	setString(&b.OralHygieneHabits, f.OralHygieneHabits)
	setString(&b.DentalTraumaHistory, f.DentalTraumaHistory)
	setString(&b.SmokingTobaccoUse, f.SmokingTobaccoUse)
	setString(&b.AlcoholConsumption, f.AlcoholConsumption)
	setString(&b.DietHabits, f.DietHabits)
	setString(&b.InsuranceProvider, f.InsuranceProvider)
	setString(&b.InsurancePolicyNumber, f.InsurancePolicyNumber)
	setString(&b.ConsentForms, f.ConsentForms)
}

// CreateBiodataRequest payload.
type CreateBiodataRequest struct {
	PatientID int64  `json:"patient_id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	BiodataFields
}

// ToDomain builds the record to insert.
func (r CreateBiodataRequest) ToDomain() *domain.PatientBiodata {
	b := &domain.PatientBiodata{
		PatientID: r.PatientID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	r.BiodataFields.applyTo(b)
	return b
}

// UpdateBiodataRequest is a partial update; only present fields change.
type UpdateBiodataRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	BiodataFields
}

// Apply copies the present fields onto b.
func (r UpdateBiodataRequest) Apply(b *domain.PatientBiodata) {
	if r.FirstName != nil {
		b.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		b.LastName = *r.LastName
	}
	r.BiodataFields.applyTo(b)
}

// CreatePlannerRequest payload.
type CreatePlannerRequest struct {
	PatientID     int64      `json:"patient_id" validate:"required,gt=0"`
	Title         string     `json:"title" validate:"required,max=200"`
	Description   *string    `json:"description"`
	PlannedDate   *time.Time `json:"planned_date"`
	CompletedDate *time.Time `json:"completed_date"`
	Status        string     `json:"status" validate:"omitempty,max=50"`
	Priority      *string    `json:"priority" validate:"omitempty,max=50"`
}

// ToDomain builds the entry to insert.
func (r CreatePlannerRequest) ToDomain() *domain.RecordPlannerEntry {
	return &domain.RecordPlannerEntry{
		PatientID:     r.PatientID,
		Title:         r.Title,
		Description:   r.Description,
		PlannedDate:   r.PlannedDate,
		CompletedDate: r.CompletedDate,
		Status:        r.Status,
		Priority:      r.Priority,
	}
}

// UpdatePlannerRequest is a partial update.
type UpdatePlannerRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description"`
	PlannedDate   *time.Time `json:"planned_date"`
	CompletedDate *time.Time `json:"completed_date"`
	Status        *string    `json:"status" validate:"omitempty,min=1,max=50"`
	Priority      *string    `json:"priority" validate:"omitempty,max=50"`
}

// Apply copies the present fields onto e.
func (r UpdatePlannerRequest) Apply(e *domain.RecordPlannerEntry) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	setString(&e.Description, r.Description)
	setTime(&e.PlannedDate, r.PlannedDate)
	setTime(&e.CompletedDate, r.CompletedDate)
	setString(&e.Priority, r.Priority)
}

// CreateIntraoralPictureRequest payload.
type CreateIntraoralPictureRequest struct {
	PatientID   int64      `json:"patient_id" validate:"required,gt=0"`
	ImageURL    string     `json:"image_url" validate:"required,max=500"`
	ImagePath   *string    `json:"image_path" validate:"omitempty,max=500"`
	Description *string    `json:"description"`
	PictureType *string    `json:"picture_type" validate:"omitempty,max=100"`
	TakenDate   *time.Time `json:"taken_date"`
}

// ToDomain builds the picture reference to insert.
func (r CreateIntraoralPictureRequest) ToDomain() *domain.IntraoralPicture {
	p := &domain.IntraoralPicture{
		PatientID:   r.PatientID,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
		Description: r.Description,
		PictureType: r.PictureType,
	}
	if r.TakenDate != nil {
		p.TakenDate = *r.TakenDate
	}
	return p
}

// CreateXRayRequest payload.
type CreateXRayRequest struct {
	PatientID   int64      `json:"patient_id" validate:"required,gt=0"`
	ImageURL    string     `json:"image_url" validate:"required,max=500"`
	ImagePath   *string    `json:"image_path" validate:"omitempty,max=500"`
	XRayType    *string    `json:"xray_type" validate:"omitempty,max=100"`
	Description *string    `json:"description"`
	TakenDate   *time.Time `json:"taken_date"`
}

// ToDomain builds the X-ray reference to insert.
func (r CreateXRayRequest) ToDomain() *domain.XRay {
	x := &domain.XRay{
		PatientID:   r.PatientID,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
		XRayType:    r.XRayType,
		Description: r.Description,
	}
	if r.TakenDate != nil {
		x.TakenDate = *r.TakenDate
	}
	return x
}

// VisitFields are the optional clinical notes of a visit.
type VisitFields struct {
	VisitType          *string    `json:"visit_type" validate:"omitempty,max=100"`
	ChiefComplaint     *string    `json:"chief_complaint"`
	ExaminationNotes   *string    `json:"examination_notes"`
	Diagnosis          *string    `json:"diagnosis"`
	TreatmentPlan      *string    `json:"treatment_plan"`
	TreatmentPerformed *string    `json:"treatment_performed"`
	NextAppointment    *time.Time `json:"next_appointment"`
}

func (f VisitFields) applyTo(v *domain.Visit) {
	setString(&v.VisitType, f.VisitType)
	setString(&v.ChiefComplaint, f.ChiefComplaint)
	setString(&v.ExaminationNotes, f.ExaminationNotes)
	setString(&v.Diagnosis, f.Diagnosis)
	setString(&v.TreatmentPlan, f.TreatmentPlan)
	setString(&v.TreatmentPerformed, f.TreatmentPerformed)
	setTime(&v.NextAppointment, f.NextAppointment)
}

// CreateVisitRequest payload.
type CreateVisitRequest struct {
	PatientID int64      `json:"patient_id" validate:"required,gt=0"`
	VisitDate *time.Time `json:"visit_date"`
	VisitFields
}

// ToDomain builds the visit to insert.
func (r CreateVisitRequest) ToDomain() *domain.Visit {
	v := &domain.Visit{PatientID: r.PatientID}
	if r.VisitDate != nil {
		v.VisitDate = *r.VisitDate
	}
	r.VisitFields.applyTo(v)
	return v
}

// UpdateVisitRequest is a partial update.
type UpdateVisitRequest struct {
	VisitDate *time.Time `json:"visit_date"`
	VisitFields
}

// Apply copies the present fields onto v.
func (r UpdateVisitRequest) Apply(v *domain.Visit) {
	if r.VisitDate != nil {
		v.VisitDate = *r.VisitDate
	}
	r.VisitFields.applyTo(v)
}

func setString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func setTime(dst **time.Time, src *time.Time) {
	if src != nil {
		*dst = src
	}
}
