package entity

import "time"

// Status válidos para Quote.
const (
	QuoteStatusPendente  = "Pendente"
	QuoteStatusAprovada  = "Aprovada"
	QuoteStatusRejeitada = "Rejeitada"
	QuoteStatusExpirada  = "Expirada"
)

// Quote representa uma cotação/proposta enviada a um cliente.
type Quote struct {
	ID             int64
	ClientID       int64
	ClientName     string // snapshot desnormalizado
	Title          string
	Description    string
	Value          float64
	Status         string // Pendente, Aprovada, Rejeitada, Expirada
	Representative string
	ValidUntil     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
