package entity

import "time"

// Status válidos para Lead.
const (
	LeadStatusNovo        = "Novo"
	LeadStatusContato     = "Contato"
	LeadStatusQualificado = "Qualificado"
	LeadStatusPerdido     = "Perdido"
)

// Lead representa um prospect ainda não convertido em cliente.
type Lead struct {
	ID         int64
	Name       string
	Email      string
	Status     string // Novo, Contato, Qualificado, Perdido
	Source     string // Website, LinkedIn, Indicação, etc.
	AssignedTo string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
