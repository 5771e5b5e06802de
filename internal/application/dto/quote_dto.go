package dto

import "time"

// CreateQuoteRequest entrada para criar uma cotação. ValidUntil é ISO-8601 obrigatório.
type CreateQuoteRequest struct {
	ClientID       int64    `json:"clientId"`
	ClientName     string   `json:"clientName"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Value          *float64 `json:"value"`
	Status         string   `json:"status"`
	Representative string   `json:"representative"`
	ValidUntil     string   `json:"validUntil"`
}

// UpdateQuoteRequest entrada para atualizar uma cotação (somente campos presentes mudam).
type UpdateQuoteRequest struct {
	ClientID       *int64   `json:"clientId"`
	ClientName     *string  `json:"clientName"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Value          *float64 `json:"value"`
	Status         *string  `json:"status"`
	Representative *string  `json:"representative"`
	ValidUntil     *string  `json:"validUntil"`
}

// QuoteResponse saída de uma cotação.
type QuoteResponse struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"clientId"`
	ClientName     string    `json:"clientName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Value          float64   `json:"value"`
	Status         string    `json:"status"`
	Representative string    `json:"representative"`
	ValidUntil     time.Time `json:"validUntil"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// QuoteStatsResponse estatísticas de cotações.
type QuoteStatsResponse struct {
	TotalQuotes    int64   `json:"totalQuotes"`
	PendingQuotes  int64   `json:"pendingQuotes"`
	ApprovedQuotes int64   `json:"approvedQuotes"`
	RejectedQuotes int64   `json:"rejectedQuotes"`
	ApprovedValue  float64 `json:"approvedValue"`
	PendingValue   float64 `json:"pendingValue"`
	ConversionRate float64 `json:"conversionRate"` // aprovadas/total × 100, 0 se não há cotações
}
