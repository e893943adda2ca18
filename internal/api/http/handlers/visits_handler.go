package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/api/dto"
)

// CreateVisit handles POST /patients/visits.
func (h *PatientsHandler) CreateVisit(c *fiber.Ctx) error {
	var req dto.CreateVisitRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	visit, err := h.patients.RecordVisit(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(visit))
}

// ListVisits handles GET /patients/visits/:patient_id.
func (h *PatientsHandler) ListVisits(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	visits, err := h.patients.ListVisits(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(data(visits))
}

// GetVisit handles GET /patients/visits/detail/:visit_id.
func (h *PatientsHandler) GetVisit(c *fiber.Ctx) error {
	id, err := idParam(c, "visit_id")
	if err != nil {
		return err
	}
	visit, err := h.patients.GetVisit(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(data(visit))
}

// UpdateVisit handles PUT /patients/visits/:visit_id.
func (h *PatientsHandler) UpdateVisit(c *fiber.Ctx) error {
	id, err := idParam(c, "visit_id")
	if err != nil {
		return err
	}
	var req dto.UpdateVisitRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	visit, err := h.patients.UpdateVisit(c.UserContext(), id, req.Apply)
	if err != nil {
		return err
	}
	return c.JSON(data(visit))
}

// DeleteVisit handles DELETE /patients/visits/:visit_id.
func (h *PatientsHandler) DeleteVisit(c *fiber.Ctx) error {
	id, err := idParam(c, "visit_id")
	if err != nil {
		return err
	}
	if err := h.patients.DeleteVisit(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
