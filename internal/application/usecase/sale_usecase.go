package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// SaleUseCase aplica regras de negócio para vendas.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase constrói o caso de uso com o porto de persistência.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Create cria uma nova venda. Data vazia usa o momento atual; data inválida
// devolve erro de validação apontando o campo.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientName == "" {
		return nil, domain.NewValidationError("clientName", "")
	}
	if in.Product == "" {
		return nil, domain.NewValidationError("product", "")
	}
	if in.Value == nil {
		return nil, domain.NewValidationError("value", "")
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := dto.ParseISODate(in.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", "formato de data inválido, use ISO-8601")
		}
		date = parsed
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusPendente
	}
	now := time.Now()
	sale := &entity.Sale{
		ClientID:       in.ClientID,
		ClientName:     in.ClientName,
		Product:        in.Product,
		Value:          *in.Value,
		Status:         status,
		Representative: in.Representative,
		Date:           date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID busca uma venda por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List devolve todas as vendas.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if in.ClientID != nil {
		sale.ClientID = *in.ClientID
	}
	if in.ClientName != nil {
		sale.ClientName = *in.ClientName
	}
	if in.Product != nil {
		sale.Product = *in.Product
	}
	if in.Value != nil {
		sale.Value = *in.Value
	}
	if in.Status != nil {
		sale.Status = *in.Status
	}
	if in.Representative != nil {
		sale.Representative = *in.Representative
	}
	if in.Date != nil {
		parsed, err := dto.ParseISODate(*in.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", "formato de data inválido, use ISO-8601")
		}
		sale.Date = parsed
	}
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete remove uma venda definitivamente.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de vendas agrupadas por status.
func (uc *SaleUseCase) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	row, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleStatsResponse{
		TotalSales:    row.Total,
		CountByStatus: row.CountByStatus,
		ValueByStatus: row.ValueByStatus,
	}
	if row.Total > 0 {
		out.CompletionRate = float64(row.CountByStatus[entity.SaleStatusConcluida]) / float64(row.Total) * 100
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		Product:        s.Product,
		Value:          s.Value,
		Status:         s.Status,
		Representative: s.Representative,
		Date:           s.Date,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
