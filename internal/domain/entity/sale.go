package entity

import "time"

// Status válidos para Sale.
const (
	SaleStatusPendente  = "Pendente"
	SaleStatusConcluida = "Concluída"
	SaleStatusCancelada = "Cancelada"
)

// Sale representa uma venda fechada ou em andamento.
type Sale struct {
	ID             int64
	ClientID       int64
	ClientName     string // snapshot desnormalizado do nome do cliente
	Product        string
	Value          float64
	Status         string // Pendente, Concluída, Cancelada
	Representative string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
