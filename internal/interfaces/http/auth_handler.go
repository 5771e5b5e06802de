package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proreps/crm-backend/internal/application/auth"
	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/application/usecase"
)

// AuthHandler trata login, perfil e troca de senha.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, userUC: userUC}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me GET /api/me e GET /api/users/profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile PUT /api/users/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.userUC.UpdateProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword POST /api/change-password e POST /api/users/change-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if err := h.uc.ChangePassword(c.Context(), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "senha alterada com sucesso"})
}
