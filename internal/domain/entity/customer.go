package entity

import "time"

// Customer representa um cliente da carteira.
// Sale/Quote/Appointment referenciam o cliente por ID mais um snapshot do nome
// (desnormalização intencional: o snapshot pode ficar obsoleto após um update).
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string // nome da empresa do cliente
	CreatedAt time.Time
	UpdatedAt time.Time
}
