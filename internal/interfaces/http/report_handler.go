package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
	"github.com/proreps/crm-backend/internal/metrics"
)

// ReportHandler trata relatórios persistidos, geração em tempo real e o painel.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create POST /api/reports
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	metrics.ReportGenerated(out.Type)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/reports
func (h *ReportHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Generate POST /api/reports/generate/:type — calcula sem persistir.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
	}
	out, err := h.uc.Generate(c.Context(), c.Params("type"), in)
	if err != nil {
		return writeError(c, err)
	}
	metrics.ReportGenerated(out.Type)
	return c.JSON(out)
}

// Dashboard GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/reports/:id
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "relatório")
	}
	return c.JSON(out)
}

// ExportPDF GET /api/reports/:id/pdf
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, filename, err := h.uc.ExportPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// Delete DELETE /api/reports/:id
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
