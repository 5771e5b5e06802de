package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está em uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInactiveUser       = errors.New("usuário inativo")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrSelfDelete         = errors.New("não é possível excluir a própria conta")
	ErrSelfDemote         = errors.New("não é possível remover o próprio papel de admin")
)

// ValidationError aponta o campo ofensivo de uma requisição inválida.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "campo " + e.Field + " é obrigatório"
	}
	return "campo " + e.Field + ": " + e.Reason
}

// NewValidationError constrói um erro de validação para o campo dado.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
