package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/api/dto"
)

// CreatePlannerEntry handles POST /patients/record-planner.
func (h *PatientsHandler) CreatePlannerEntry(c *fiber.Ctx) error {
	var req dto.CreatePlannerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.patients.CreatePlannerEntry(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(entry))
}

// ListPlannerEntries handles GET /patients/record-planner/:patient_id.
func (h *PatientsHandler) ListPlannerEntries(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	entries, err := h.patients.ListPlannerEntries(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(data(entries))
}

// UpdatePlannerEntry handles PUT /patients/record-planner/:planner_id.
func (h *PatientsHandler) UpdatePlannerEntry(c *fiber.Ctx) error {
	id, err := idParam(c, "planner_id")
	if err != nil {
		return err
	}
	var req dto.UpdatePlannerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.patients.UpdatePlannerEntry(c.UserContext(), id, req.Apply)
	if err != nil {
		return err
	}
	return c.JSON(data(entry))
}

// DeletePlannerEntry handles DELETE /patients/record-planner/:planner_id.
func (h *PatientsHandler) DeletePlannerEntry(c *fiber.Ctx) error {
	id, err := idParam(c, "planner_id")
	if err != nil {
		return err
	}
	if err := h.patients.DeletePlannerEntry(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateIntraoralPicture handles POST /patients/intraoral-pictures.
func (h *PatientsHandler) CreateIntraoralPicture(c *fiber.Ctx) error {
	var req dto.CreateIntraoralPictureRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	picture, err := h.patients.AddIntraoralPicture(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(picture))
}

// ListIntraoralPictures handles GET /patients/intraoral-pictures/:patient_id.
func (h *PatientsHandler) ListIntraoralPictures(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	pictures, err := h.patients.ListIntraoralPictures(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(data(pictures))
}

// DeleteIntraoralPicture handles DELETE /patients/intraoral-pictures/:picture_id.
func (h *PatientsHandler) DeleteIntraoralPicture(c *fiber.Ctx) error {
	id, err := idParam(c, "picture_id")
	if err != nil {
		return err
	}
	if err := h.patients.DeleteIntraoralPicture(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateXRay handles POST /patients/xrays.
func (h *PatientsHandler) CreateXRay(c *fiber.Ctx) error {
	var req dto.CreateXRayRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	xray, err := h.patients.AddXRay(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(xray))
}

// ListXRays handles GET /patients/xrays/:patient_id.
func (h *PatientsHandler) ListXRays(c *fiber.Ctx) error {
	patientID, err := idParam(c, "patient_id")
	if err != nil {
		return err
	}
	xrays, err := h.patients.ListXRays(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(data(xrays))
}

// DeleteXRay handles DELETE /patients/xrays/:xray_id.
func (h *PatientsHandler) DeleteXRay(c *fiber.Ctx) error {
	id, err := idParam(c, "xray_id")
	if err != nil {
		return err
	}
	if err := h.patients.DeleteXRay(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
