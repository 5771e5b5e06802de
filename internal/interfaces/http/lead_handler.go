package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
)

// LeadHandler trata as requisições HTTP de leads.
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler constrói o handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/leads/:id
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "lead")
	}
	return c.JSON(out)
}

// Update PUT /api/leads/:id (parcial: somente campos presentes mudam)
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "lead")
	}
	return c.JSON(out)
}

// Delete DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats GET /api/leads/stats
func (h *LeadHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
