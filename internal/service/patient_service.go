package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/repository"
)

// PatientService manages patients and their clinical records.
type PatientService struct {
	patients repository.PatientRepository
	biodata  repository.BiodataRepository
	planner  repository.RecordPlannerRepository
	imaging  repository.ImagingRepository
	visits   repository.VisitRepository
	now      func() time.Time
}

// PatientDependencies bundles repositories for patient service.
type PatientDependencies struct {
	PatientRepo repository.PatientRepository
	BiodataRepo repository.BiodataRepository
	PlannerRepo repository.RecordPlannerRepository
	ImagingRepo repository.ImagingRepository
	VisitRepo   repository.VisitRepository
}

// NewPatientService builds the service.
func NewPatientService(deps PatientDependencies) *PatientService {
	return &PatientService{
		patients: deps.PatientRepo,
		biodata:  deps.BiodataRepo,
		planner:  deps.PlannerRepo,
		imaging:  deps.ImagingRepo,
		visits:   deps.VisitRepo,
		now:      time.Now,
	}
}

// notFound maps a repository miss to the given domain error and wraps anything
// else as an infrastructure failure.
func notFound(err error, notFoundErr error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundErr
	}
	return fmt.Errorf("%s: %w", op, err)
}

// missingPatient maps a foreign key failure on patient_id to ErrPatientNotFound.
func missingPatient(err error, op string) error {
	if errors.Is(err, repository.ErrMissingReference) {
		return ErrPatientNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreatePatient registers a patient owned by the given account.
func (s *PatientService) CreatePatient(ctx context.Context, userID int64) (*domain.Patient, error) {
	patient := &domain.Patient{UserID: userID}
	if err := s.patients.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return patient, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPatientNotFound, "get patient")
	}
	return patient, nil
}

func (s *PatientService) ListPatientsByUser(ctx context.Context, userID int64) ([]domain.Patient, error) {
	patients, err := s.patients.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// DeletePatient removes the patient together with every dependent record.
func (s *PatientService) DeletePatient(ctx context.Context, id int64) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return notFound(err, ErrPatientNotFound, "delete patient")
	}
	return nil
}

// CreateBiodata stores the biodata record of a patient. A patient has at most
// one; later changes go through UpdateBiodata.
func (s *PatientService) CreateBiodata(ctx context.Context, biodata *domain.PatientBiodata) (*domain.PatientBiodata, error) {
	if _, err := s.biodata.GetByPatientID(ctx, biodata.PatientID); err == nil {
		return nil, ErrBiodataExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup biodata: %w", err)
	}

	if err := s.biodata.Create(ctx, biodata); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrBiodataExists
		}
		return nil, missingPatient(err, "create biodata")
	}
	return biodata, nil
}

func (s *PatientService) GetBiodata(ctx context.Context, patientID int64) (*domain.PatientBiodata, error) {
	biodata, err := s.biodata.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, notFound(err, ErrBiodataNotFound, "get biodata")
	}
	return biodata, nil
}

// UpdateBiodata loads the current record, lets apply change the provided
// fields and persists the result.
func (s *PatientService) UpdateBiodata(ctx context.Context, patientID int64, apply func(*domain.PatientBiodata)) (*domain.PatientBiodata, error) {
	biodata, err := s.GetBiodata(ctx, patientID)
	if err != nil {
		return nil, err
	}
	apply(biodata)
	biodata.PatientID = patientID

	if err := s.biodata.Update(ctx, biodata); err != nil {
		return nil, notFound(err, ErrBiodataNotFound, "update biodata")
	}
	return biodata, nil
}

// CreatePlannerEntry adds a treatment plan step. Status defaults to planned.
func (s *PatientService) CreatePlannerEntry(ctx context.Context, entry *domain.RecordPlannerEntry) (*domain.RecordPlannerEntry, error) {
	if entry.Status == "" {
		entry.Status = domain.PlannerStatusPlanned
	}
	if err := s.planner.Create(ctx, entry); err != nil {
		return nil, missingPatient(err, "create planner entry")
	}
	return entry, nil
}

func (s *PatientService) ListPlannerEntries(ctx context.Context, patientID int64) ([]domain.RecordPlannerEntry, error) {
	entries, err := s.planner.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list planner entries: %w", err)
	}
	return entries, nil
}

func (s *PatientService) UpdatePlannerEntry(ctx context.Context, id int64, apply func(*domain.RecordPlannerEntry)) (*domain.RecordPlannerEntry, error) {
	entry, err := s.planner.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPlannerNotFound, "get planner entry")
	}
	apply(entry)
	entry.ID = id

	if err := s.planner.Update(ctx, entry); err != nil {
		return nil, notFound(err, ErrPlannerNotFound, "update planner entry")
	}
	return entry, nil
}

func (s *PatientService) DeletePlannerEntry(ctx context.Context, id int64) error {
	if err := s.planner.Delete(ctx, id); err != nil {
		return notFound(err, ErrPlannerNotFound, "delete planner entry")
	}
	return nil
}

// AddIntraoralPicture stores a picture reference; an unset taken date means now.
func (s *PatientService) AddIntraoralPicture(ctx context.Context, picture *domain.IntraoralPicture) (*domain.IntraoralPicture, error) {
	if picture.TakenDate.IsZero() {
		picture.TakenDate = s.now().UTC()
	}
	if err := s.imaging.CreatePicture(ctx, picture); err != nil {
		return nil, missingPatient(err, "create intraoral picture")
	}
	return picture, nil
}

func (s *PatientService) ListIntraoralPictures(ctx context.Context, patientID int64) ([]domain.IntraoralPicture, error) {
	pictures, err := s.imaging.ListPictures(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list intraoral pictures: %w", err)
	}
	return pictures, nil
}

func (s *PatientService) DeleteIntraoralPicture(ctx context.Context, id int64) error {
	if err := s.imaging.DeletePicture(ctx, id); err != nil {
		return notFound(err, ErrPictureNotFound, "delete intraoral picture")
	}
	return nil
}

// AddXRay stores an X-ray reference; an unset taken date means now.
func (s *PatientService) AddXRay(ctx context.Context, xray *domain.XRay) (*domain.XRay, error) {
	if xray.TakenDate.IsZero() {
		xray.TakenDate = s.now().UTC()
	}
	if err := s.imaging.CreateXRay(ctx, xray); err != nil {
		return nil, missingPatient(err, "create xray")
	}
	return xray, nil
}

func (s *PatientService) ListXRays(ctx context.Context, patientID int64) ([]domain.XRay, error) {
	xrays, err := s.imaging.ListXRays(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list xrays: %w", err)
	}
	return xrays, nil
}

func (s *PatientService) DeleteXRay(ctx context.Context, id int64) error {
	if err := s.imaging.DeleteXRay(ctx, id); err != nil {
		return notFound(err, ErrXRayNotFound, "delete xray")
	}
	return nil
}

// RecordVisit stores a visit; an unset visit date means now.
func (s *PatientService) RecordVisit(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	if visit.VisitDate.IsZero() {
		visit.VisitDate = s.now().UTC()
	}
	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, missingPatient(err, "create visit")
	}
	return visit, nil
}

// ListVisits returns a patient's visits, newest first.
func (s *PatientService) ListVisits(ctx context.Context, patientID int64) ([]domain.Visit, error) {
	visits, err := s.visits.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return visits, nil
}

func (s *PatientService) GetVisit(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrVisitNotFound, "get visit")
	}
	return visit, nil
}

func (s *PatientService) UpdateVisit(ctx context.Context, id int64, apply func(*domain.Visit)) (*domain.Visit, error) {
	visit, err := s.GetVisit(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(visit)
	visit.ID = id

	if err := s.visits.Update(ctx, visit); err != nil {
		return nil, notFound(err, ErrVisitNotFound, "update visit")
	}
	return visit, nil
}

func (s *PatientService) DeleteVisit(ctx context.Context, id int64) error {
	if err := s.visits.Delete(ctx, id); err != nil {
		return notFound(err, ErrVisitNotFound, "delete visit")
	}
	return nil
}
