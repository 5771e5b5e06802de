package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// QuoteUseCase aplica regras de negócio para cotações.
type QuoteUseCase struct {
	repo repository.QuoteRepository
}

// NewQuoteUseCase constrói o caso de uso com o porto de persistência.
func NewQuoteUseCase(repo repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// Create cria uma nova cotação. validUntil é obrigatório e deve ser ISO-8601.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientName == "" {
		return nil, domain.NewValidationError("clientName", "")
	}
	if in.Title == "" {
		return nil, domain.NewValidationError("title", "")
	}
	if in.Value == nil {
		return nil, domain.NewValidationError("value", "")
	}
	if in.ValidUntil == "" {
		return nil, domain.NewValidationError("validUntil", "")
	}
	validUntil, err := dto.ParseISODate(in.ValidUntil)
	if err != nil {
		return nil, domain.NewValidationError("validUntil", "formato de data inválido, use ISO-8601")
	}
	status := in.Status
	if status == "" {
		status = entity.QuoteStatusPendente
	}
	now := time.Now()
	quote := &entity.Quote{
		ClientID:       in.ClientID,
		ClientName:     in.ClientName,
		Title:          in.Title,
		Description:    in.Description,
		Value:          *in.Value,
		Status:         status,
		Representative: in.Representative,
		ValidUntil:     validUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// GetByID busca uma cotação por ID.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id int64) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	return toQuoteResponse(quote), nil
}

// List devolve todas as cotações.
func (uc *QuoteUseCase) List(ctx context.Context) ([]dto.QuoteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toQuoteResponses(list), nil
}

// ListByStatus devolve as cotações com o status dado.
func (uc *QuoteUseCase) ListByStatus(ctx context.Context, status string) ([]dto.QuoteResponse, error) {
	list, err := uc.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toQuoteResponses(list), nil
}

// ListByClient devolve as cotações de um cliente.
func (uc *QuoteUseCase) ListByClient(ctx context.Context, clientID int64) ([]dto.QuoteResponse, error) {
	list, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toQuoteResponses(list), nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
func (uc *QuoteUseCase) Update(ctx context.Context, id int64, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	if in.ClientID != nil {
		quote.ClientID = *in.ClientID
	}
	if in.ClientName != nil {
		quote.ClientName = *in.ClientName
	}
	if in.Title != nil {
		quote.Title = *in.Title
	}
	if in.Description != nil {
		quote.Description = *in.Description
	}
	if in.Value != nil {
		quote.Value = *in.Value
	}
	if in.Status != nil {
		quote.Status = *in.Status
	}
	if in.Representative != nil {
		quote.Representative = *in.Representative
	}
	if in.ValidUntil != nil {
		parsed, err := dto.ParseISODate(*in.ValidUntil)
		if err != nil {
			return nil, domain.NewValidationError("validUntil", "formato de data inválido, use ISO-8601")
		}
		quote.ValidUntil = parsed
	}
	quote.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// Delete remove uma cotação definitivamente.
func (uc *QuoteUseCase) Delete(ctx context.Context, id int64) error {
	quote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de cotações. Sem cotações, todas as taxas são zero.
func (uc *QuoteUseCase) Stats(ctx context.Context) (*dto.QuoteStatsResponse, error) {
	row, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteStatsResponse{
		TotalQuotes:    row.Total,
		PendingQuotes:  row.Pending,
		ApprovedQuotes: row.Approved,
		RejectedQuotes: row.Rejected,
		ApprovedValue:  row.ApprovedValue,
		PendingValue:   row.PendingValue,
	}
	if row.Total > 0 {
		out.ConversionRate = float64(row.Approved) / float64(row.Total) * 100
	}
	return out, nil
}

func toQuoteResponses(list []*entity.Quote) []dto.QuoteResponse {
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q))
	}
	return items
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:             q.ID,
		ClientID:       q.ClientID,
		ClientName:     q.ClientName,
		Title:          q.Title,
		Description:    q.Description,
		Value:          q.Value,
		Status:         q.Status,
		Representative: q.Representative,
		ValidUntil:     q.ValidUntil,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
