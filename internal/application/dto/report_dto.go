package dto

import "time"

// CreateReportRequest entrada para gerar e persistir um relatório.
type CreateReportRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	GeneratedBy string `json:"generatedBy"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

// GenerateReportRequest janela para geração em tempo real (sem persistir).
type GenerateReportRequest struct {
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

// ReportResponse saída de um relatório persistido.
type ReportResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	GeneratedBy string         `json:"generatedBy"`
	PeriodStart time.Time      `json:"periodStart"`
	PeriodEnd   time.Time      `json:"periodEnd"`
	Data        map[string]any `json:"data"`
	Status      string         `json:"status"`
	FilePath    string         `json:"filePath"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// GeneratedReportResponse resultado efêmero do endpoint de geração em tempo real.
type GeneratedReportResponse struct {
	Type        string         `json:"type"`
	PeriodStart time.Time      `json:"periodStart"`
	PeriodEnd   time.Time      `json:"periodEnd"`
	Data        map[string]any `json:"data"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// DashboardResponse rollup dos últimos 30 dias para o painel.
type DashboardResponse struct {
	TotalCustomers         int64                    `json:"totalCustomers"`
	TotalSales             int64                    `json:"totalSales"`
	TotalLeads             int64                    `json:"totalLeads"`
	Revenue                float64                  `json:"revenue"`
	SalesByRepresentative  map[string]RepSalesEntry `json:"salesByRepresentative"`
	LeadsByStatus          map[string]int64         `json:"leadsByStatus"`
	Period                 PeriodResponse           `json:"period"`
}

// RepSalesEntry contagem e valor de vendas concluídas de um representante.
type RepSalesEntry struct {
	Count int64   `json:"count"`
	Value float64 `json:"value"`
}

// PeriodResponse janela de datas usada em um relatório.
type PeriodResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
