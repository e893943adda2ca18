package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/api/dto"
	"github.com/spec-kit/dental-records/internal/service"
)

// PatientsHandler exposes patient records: patients, biodata, treatment
// planner, imaging and visits.
type PatientsHandler struct {
	patients *service.PatientService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patients *service.PatientService) *PatientsHandler {
	return &PatientsHandler{patients: patients}
}

// CreatePatient handles POST /patients.
func (h *PatientsHandler) CreatePatient(c *fiber.Ctx) error {
	var req dto.CreatePatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	patient, err := h.patients.CreatePatient(c.UserContext(), req.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(patient))
}

// GetPatient handles GET /patients/:id.
func (h *PatientsHandler) GetPatient(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	patient, err := h.patients.GetPatient(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(data(patient))
}

// ListUserPatients handles GET /patients/user/:user_id.
func (h *PatientsHandler) ListUserPatients(c *fiber.Ctx) error {
	userID, err := idParam(c, "user_id")
	if err != nil {
		return err
	}
	patients, err := h.patients.ListPatientsByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(data(patients))
}

// DeletePatient handles DELETE /patients/:id.
func (h *PatientsHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.patients.DeletePatient(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateBiodata handles POST /patients/biodata.
func (h *PatientsHandler) CreateBiodata(c *fiber.Ctx) error {
	var req dto.CreateBiodataRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	biodata, err := h.patients.CreateBiodata(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(biodata))
}

// GetBiodata handles GET /patients/biodata/:patient_id.
func (h *PatientsHandler) GetBiodata(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	biodata, err := h.patients.GetBiodata(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(data(biodata))
}

// UpdateBiodata handles PUT /patients/biodata/:patient_id.
func (h *PatientsHandler) UpdateBiodata(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	var req dto.UpdateBiodataRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	biodata, err := h.patients.UpdateBiodata(c.UserContext(), patientID, req.Apply)
	if err != nil {
		return err
	}
	return c.JSON(data(biodata))
}
