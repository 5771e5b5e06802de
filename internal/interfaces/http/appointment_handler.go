package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
	"github.com/proreps/crm-backend/internal/domain"
)

// AppointmentHandler trata as requisições HTTP de compromissos.
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler constrói o handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create POST /api/appointments
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/appointments
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListToday GET /api/appointments/today
func (h *AppointmentHandler) ListToday(c *fiber.Ctx) error {
	list, err := h.uc.ListToday(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListWeek GET /api/appointments/week
func (h *AppointmentHandler) ListWeek(c *fiber.Ctx) error {
	list, err := h.uc.ListWeek(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListUpcoming GET /api/appointments/upcoming
func (h *AppointmentHandler) ListUpcoming(c *fiber.Ctx) error {
	list, err := h.uc.ListUpcoming(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListByRepresentative GET /api/appointments/representative/:name
func (h *AppointmentHandler) ListByRepresentative(c *fiber.Ctx) error {
	list, err := h.uc.ListByRepresentative(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListByClient GET /api/appointments/client/:clientId
func (h *AppointmentHandler) ListByClient(c *fiber.Ctx) error {
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

// GetByID GET /api/appointments/:id
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "compromisso")
	}
	return c.JSON(out)
}

// Update PUT /api/appointments/:id (parcial: somente campos presentes mudam)
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "compromisso")
	}
	return c.JSON(out)
}

// Delete DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats GET /api/appointments/stats
func (h *AppointmentHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
