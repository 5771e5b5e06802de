package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

const defaultReportWindowDays = 30

// ReportPDFGenerator exporta um relatório persistido como PDF.
type ReportPDFGenerator interface {
	Generate(report *entity.Report) ([]byte, error)
}

// ReportUseCase gera agregados de vendas, clientes, leads e financeiro
// sobre uma janela de datas, e administra os snapshots persistidos.
type ReportUseCase struct {
	reports   repository.ReportRepository
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	leads     repository.LeadRepository
	pdf       ReportPDFGenerator
	now       func() time.Time
}

// NewReportUseCase constrói o caso de uso de relatórios. pdf pode ser nil
// quando a exportação não está habilitada.
func NewReportUseCase(
	reports repository.ReportRepository,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	leads repository.LeadRepository,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		reports:   reports,
		sales:     sales,
		customers: customers,
		leads:     leads,
		pdf:       pdf,
		now:       time.Now,
	}
}

// Generate calcula o relatório do tipo dado em tempo real, sem persistir.
// Janela vazia usa os últimos 30 dias.
func (uc *ReportUseCase) Generate(ctx context.Context, reportType string, in dto.GenerateReportRequest) (*dto.GeneratedReportResponse, error) {
	start, end, err := uc.reportWindow(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	data, err := uc.generateData(ctx, reportType, start, end)
	if err != nil {
		return nil, err
	}
	return &dto.GeneratedReportResponse{
		Type:        reportType,
		PeriodStart: start,
		PeriodEnd:   end,
		Data:        data,
		GeneratedAt: uc.now(),
	}, nil
}

// Create gera o relatório e persiste o snapshot com status "Gerado".
func (uc *ReportUseCase) Create(ctx context.Context, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if in.Title == "" {
		return nil, domain.NewValidationError("title", "")
	}
	if in.Type == "" {
		return nil, domain.NewValidationError("type", "")
	}
	start, end, err := uc.reportWindow(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	data, err := uc.generateData(ctx, in.Type, start, end)
	if err != nil {
		return nil, err
	}
	report := &entity.Report{
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		GeneratedBy: in.GeneratedBy,
		PeriodStart: start,
		PeriodEnd:   end,
		Data:        data,
		Status:      entity.ReportStatusGerado,
		CreatedAt:   uc.now(),
	}
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// GetByID busca um relatório persistido por ID.
func (uc *ReportUseCase) GetByID(ctx context.Context, id int64) (*dto.ReportResponse, error) {
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}
	return toReportResponse(report), nil
}

// List devolve todos os relatórios persistidos.
func (uc *ReportUseCase) List(ctx context.Context) ([]dto.ReportResponse, error) {
	list, err := uc.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return items, nil
}

// Delete remove um relatório persistido.
func (uc *ReportUseCase) Delete(ctx context.Context, id int64) error {
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrNotFound
	}
	return uc.reports.Delete(ctx, id)
}

// ExportPDF renderiza um relatório persistido como PDF e devolve os bytes.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, id int64) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.ErrInvalidInput
	}
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if report == nil {
		return nil, "", domain.ErrNotFound
	}
	out, err := uc.pdf.Generate(report)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("relatorio-%s-%d.pdf", report.Type, report.ID)
	return out, filename, nil
}

// Dashboard calcula o rollup dos últimos 30 dias para o painel.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	end := uc.now()
	start := end.AddDate(0, 0, -defaultReportWindowDays)

	totalCustomers, err := uc.customers.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalLeads, err := uc.leads.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	leadStats, err := uc.leads.Stats(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	byRep := make(map[string]dto.RepSalesEntry)
	for _, s := range sales {
		if s.Status != entity.SaleStatusConcluida {
			continue
		}
		revenue += s.Value
		entry := byRep[s.Representative]
		entry.Count++
		entry.Value += s.Value
		byRep[s.Representative] = entry
	}

	return &dto.DashboardResponse{
		TotalCustomers:        totalCustomers,
		TotalSales:            int64(len(sales)),
		TotalLeads:            totalLeads,
		Revenue:               revenue,
		SalesByRepresentative: byRep,
		LeadsByStatus:         leadStats.ByStatus,
		Period:                dto.PeriodResponse{Start: start, End: end},
	}, nil
}

// generateData despacha para o agregador do tipo. Tipos desconhecidos devolvem
// um placeholder em vez de erro, como o frontend espera.
func (uc *ReportUseCase) generateData(ctx context.Context, reportType string, start, end time.Time) (map[string]any, error) {
	switch reportType {
	case entity.ReportTypeVendas:
		return uc.salesReport(ctx, start, end)
	case entity.ReportTypeClientes:
		return uc.customersReport(ctx, start, end)
	case entity.ReportTypeLeads:
		return uc.leadsReport(ctx)
	case entity.ReportTypeFinanceiro:
		return uc.financialReport(ctx, start, end)
	default:
		return map[string]any{
			"message": fmt.Sprintf("tipo de relatório não suportado: %s", reportType),
		}, nil
	}
}

// salesReport agrega as vendas concluídas da janela: valor total, contagem,
// ticket médio e quebras por representante e por status.
func (uc *ReportUseCase) salesReport(ctx context.Context, start, end time.Time) (map[string]any, error) {
	sales, err := uc.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var totalValue float64
	var totalCount int64
	byRep := make(map[string]float64)
	byStatus := make(map[string]int64)
	for _, s := range sales {
		byStatus[s.Status]++
		if s.Status != entity.SaleStatusConcluida {
			continue
		}
		totalValue += s.Value
		totalCount++
		byRep[s.Representative] += s.Value
	}
	var averageTicket float64
	if totalCount > 0 {
		averageTicket = totalValue / float64(totalCount)
	}
	return map[string]any{
		"totalValue":            totalValue,
		"totalCount":            totalCount,
		"averageTicket":         averageTicket,
		"salesByRepresentative": byRep,
		"salesByStatus":         byStatus,
	}, nil
}

// customersReport conta a base total e os clientes novos da janela.
func (uc *ReportUseCase) customersReport(ctx context.Context, start, end time.Time) (map[string]any, error) {
	total, err := uc.customers.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.customers.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var growthRate float64
	if total > 0 {
		growthRate = float64(recent) / float64(total) * 100
	}
	return map[string]any{
		"totalCustomers": total,
		"newCustomers":   recent,
		"growthRate":     growthRate,
	}, nil
}

// leadsReport quebra o funil por status e por origem.
func (uc *ReportUseCase) leadsReport(ctx context.Context) (map[string]any, error) {
	row, err := uc.leads.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"totalLeads":    row.Total,
		"leadsByStatus": row.ByStatus,
		"leadsBySource": row.BySource,
	}, nil
}

// financialReport agrega a receita de vendas concluídas por mês (chave AAAA-MM).
func (uc *ReportUseCase) financialReport(ctx context.Context, start, end time.Time) (map[string]any, error) {
	sales, err := uc.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var totalRevenue float64
	monthly := make(map[string]float64)
	for _, s := range sales {
		if s.Status != entity.SaleStatusConcluida {
			continue
		}
		totalRevenue += s.Value
		monthly[s.Date.Format("2006-01")] += s.Value
	}
	var average float64
	if len(monthly) > 0 {
		average = totalRevenue / float64(len(monthly))
	}
	return map[string]any{
		"totalRevenue":          totalRevenue,
		"monthlyRevenue":        monthly,
		"averageMonthlyRevenue": average,
	}, nil
}

// reportWindow interpreta a janela pedida; campos vazios usam os últimos 30 dias.
func (uc *ReportUseCase) reportWindow(startStr, endStr string) (time.Time, time.Time, error) {
	end := uc.now()
	start := end.AddDate(0, 0, -defaultReportWindowDays)
	if startStr != "" {
		parsed, err := dto.ParseISODate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("periodStart", "formato de data inválido, use ISO-8601")
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := dto.ParseISODate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("periodEnd", "formato de data inválido, use ISO-8601")
		}
		end = parsed
	}
	return start, end, nil
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Description: r.Description,
		GeneratedBy: r.GeneratedBy,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Data:        r.Data,
		Status:      r.Status,
		FilePath:    r.FilePath,
		CreatedAt:   r.CreatedAt,
	}
}
