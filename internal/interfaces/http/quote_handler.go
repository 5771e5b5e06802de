package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
	"github.com/proreps/crm-backend/internal/domain"
)

// QuoteHandler trata as requisições HTTP de cotações.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListByStatus GET /api/quotes/status/:status
func (h *QuoteHandler) ListByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	list, err := h.uc.ListByStatus(c.Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListByClient GET /api/quotes/client/:clientId
func (h *QuoteHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := strconv.ParseInt(c.Params("clientId"), 10, 64)
	if err != nil || clientID <= 0 {
		return writeError(c, domain.NewValidationError("clientId", "deve ser um inteiro positivo"))
	}
	list, err := h.uc.ListByClient(c.Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "cotação")
	}
	return c.JSON(out)
}

// Update PUT /api/quotes/:id (parcial: somente campos presentes mudam)
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "cotação")
	}
	return c.JSON(out)
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats GET /api/quotes/stats
func (h *QuoteHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
