package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
)

// CompanyHandler trata as requisições HTTP de empresas parceiras.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create POST /api/companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/companies
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListActive GET /api/companies/active
func (h *CompanyHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListExpiringContracts GET /api/companies/expiring-contracts
func (h *CompanyHandler) ListExpiringContracts(c *fiber.Ctx) error {
	list, err := h.uc.ListExpiringContracts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListBySegment GET /api/companies/segment/:segment
func (h *CompanyHandler) ListBySegment(c *fiber.Ctx) error {
	list, err := h.uc.ListBySegment(c.Context(), c.Params("segment"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/companies/:id
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "empresa")
	}
	return c.JSON(out)
}

// Update PUT /api/companies/:id (parcial: somente campos presentes mudam)
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "empresa")
	}
	return c.JSON(out)
}

// Delete DELETE /api/companies/:id
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats GET /api/companies/stats
func (h *CompanyHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
