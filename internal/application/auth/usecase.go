package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
	"github.com/proreps/crm-backend/pkg/jwt"
)

const minPasswordLength = 6

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticação: login, perfil e troca de senha.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica email/senha, registra o último acesso e devolve token + usuário.
// Credenciais erradas e contas desativadas devolvem erros distintos, mas o
// handler responde 401 nos dois casos sem revelar qual deles ocorreu.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	lastLogin := uc.now()
	user.LastLogin = &lastLogin
	user.UpdatedAt = lastLogin
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		User:        *toUserResponse(user),
	}, nil
}

// Me devolve o perfil do usuário autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ChangePassword troca a senha do usuário autenticado após conferir a atual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLength {
		return domain.NewValidationError("newPassword", "a senha deve ter no mínimo 6 caracteres")
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Department: u.Department,
		IsActive:   u.IsActive,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastLogin:  u.LastLogin,
	}
}
