package dto

import "time"

// CreateUserRequest entrada para criar um usuário (password em texto, hash no use case).
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateUserRequest entrada para atualizar um usuário (somente campos presentes mudam).
// Email, Role e IsActive só são aplicados quando quem edita é admin.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"isActive"`
	Status     *string `json:"status"`
}

// UpdateProfileRequest campos que o próprio usuário pode alterar no perfil.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Password   *string `json:"password"`
}

// UserResponse saída de um usuário (nunca inclui o hash da senha).
type UserResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Phone      string     `json:"phone"`
	Department string     `json:"department"`
	IsActive   bool       `json:"isActive"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LastLogin  *time.Time `json:"lastLogin"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse saída com token JWT e dados do usuário autenticado.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ChangePasswordRequest troca de senha do usuário autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserStatsResponse estatísticas de usuários (somente admin).
type UserStatsResponse struct {
	TotalUsers    int64            `json:"totalUsers"`
	ActiveUsers   int64            `json:"activeUsers"`
	InactiveUsers int64            `json:"inactiveUsers"`
	UsersByRole   map[string]int64 `json:"usersByRole"`
	RecentUsers   int64            `json:"recentUsers"`
}
