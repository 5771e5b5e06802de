package dto

import "time"

// CreateLeadRequest entrada para criar um lead.
type CreateLeadRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	Source     string `json:"source"`
	AssignedTo string `json:"assignedTo"`
}

// UpdateLeadRequest entrada para atualizar um lead (somente campos presentes mudam).
type UpdateLeadRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Status     *string `json:"status"`
	Source     *string `json:"source"`
	AssignedTo *string `json:"assignedTo"`
}

// LeadResponse saída de um lead.
type LeadResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	AssignedTo string    `json:"assignedTo"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LeadStatsResponse estatísticas de leads.
type LeadStatsResponse struct {
	TotalLeads        int64            `json:"totalLeads"`
	LeadsByStatus     map[string]int64 `json:"leadsByStatus"`
	LeadsBySource     map[string]int64 `json:"leadsBySource"`
	QualificationRate float64          `json:"qualificationRate"` // qualificados/total × 100
}
