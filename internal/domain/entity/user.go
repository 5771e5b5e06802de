package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin         = "admin"
	RoleRepresentante = "representante"
	RoleUsuario       = "usuario"
)

// Status de conta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa um usuário do sistema.
type User struct {
	ID           int64
	Name         string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca em claro depois de persistir
	Role         string // admin, representante, usuario
	Phone        string
	Department   string
	IsActive     bool
	Status       string // active, inactive (mantido para compatibilidade com o frontend)
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time // nil = nunca entrou
}

// ValidRole informa se o papel está no vocabulário aceito.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRepresentante, RoleUsuario:
		return true
	}
	return false
}
