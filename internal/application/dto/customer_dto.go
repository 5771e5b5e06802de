package dto

import "time"

// CreateCustomerRequest entrada para criar um cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// UpdateCustomerRequest entrada para atualizar um cliente (somente campos presentes mudam).
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerStatsResponse estatísticas de clientes.
type CustomerStatsResponse struct {
	TotalCustomers int64   `json:"totalCustomers"`
	NewCustomers   int64   `json:"newCustomers"` // últimos 30 dias
	GrowthRate     float64 `json:"growthRate"`   // novos/total × 100
}
