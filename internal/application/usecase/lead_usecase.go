package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// LeadUseCase aplica regras de negócio para leads.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase constrói o caso de uso com o porto de persistência.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create cria um novo lead. Nome e email são obrigatórios; status vazio vira "Novo".
func (uc *LeadUseCase) Create(ctx context.Context, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "")
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNovo
	}
	now := time.Now()
	lead := &entity.Lead{
		Name:       in.Name,
		Email:      in.Email,
		Status:     status,
		Source:     in.Source,
		AssignedTo: in.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetByID busca um lead por ID.
func (uc *LeadUseCase) GetByID(ctx context.Context, id int64) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	return toLeadResponse(lead), nil
}

// List devolve todos os leads.
func (uc *LeadUseCase) List(ctx context.Context) ([]dto.LeadResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeadResponse(l))
	}
	return items, nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
func (uc *LeadUseCase) Update(ctx context.Context, id int64, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.AssignedTo != nil {
		lead.AssignedTo = *in.AssignedTo
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Delete remove um lead definitivamente.
func (uc *LeadUseCase) Delete(ctx context.Context, id int64) error {
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de leads por status e origem.
func (uc *LeadUseCase) Stats(ctx context.Context) (*dto.LeadStatsResponse, error) {
	row, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.LeadStatsResponse{
		TotalLeads:    row.Total,
		LeadsByStatus: row.ByStatus,
		LeadsBySource: row.BySource,
	}
	if row.Total > 0 {
		out.QualificationRate = float64(row.ByStatus[entity.LeadStatusQualificado]) / float64(row.Total) * 100
	}
	return out, nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Status:     l.Status,
		Source:     l.Source,
		AssignedTo: l.AssignedTo,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
