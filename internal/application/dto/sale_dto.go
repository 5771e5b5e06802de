package dto

import "time"

// CreateSaleRequest entrada para criar uma venda. Date é ISO-8601; vazio = agora.
type CreateSaleRequest struct {
	ClientID       int64    `json:"clientId"`
	ClientName     string   `json:"clientName"`
	Product        string   `json:"product"`
	Value          *float64 `json:"value"`
	Status         string   `json:"status"`
	Representative string   `json:"representative"`
	Date           string   `json:"date"`
}

// UpdateSaleRequest entrada para atualizar uma venda (somente campos presentes mudam).
type UpdateSaleRequest struct {
	ClientID       *int64   `json:"clientId"`
	ClientName     *string  `json:"clientName"`
	Product        *string  `json:"product"`
	Value          *float64 `json:"value"`
	Status         *string  `json:"status"`
	Representative *string  `json:"representative"`
	Date           *string  `json:"date"`
}

// SaleResponse saída de uma venda.
type SaleResponse struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"clientId"`
	ClientName     string    `json:"clientName"`
	Product        string    `json:"product"`
	Value          float64   `json:"value"`
	Status         string    `json:"status"`
	Representative string    `json:"representative"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SaleStatsResponse estatísticas de vendas.
type SaleStatsResponse struct {
	TotalSales     int64              `json:"totalSales"`
	CountByStatus  map[string]int64   `json:"countByStatus"`
	ValueByStatus  map[string]float64 `json:"valueByStatus"`
	CompletionRate float64            `json:"completionRate"` // concluídas/total × 100
}
