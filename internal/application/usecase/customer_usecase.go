package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// CustomerUseCase aplica regras de negócio para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso com o porto de persistência.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cria um novo cliente. Nome e email são obrigatórios.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "")
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID busca um cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List devolve todos os clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return items, nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete remove um cliente definitivamente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de clientes dos últimos 30 dias.
func (uc *CustomerUseCase) Stats(ctx context.Context) (*dto.CustomerStatsResponse, error) {
	now := time.Now()
	total, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.CountCreatedBetween(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerStatsResponse{
		TotalCustomers: total,
		NewCustomers:   recent,
	}
	if total > 0 {
		out.GrowthRate = float64(recent) / float64(total) * 100
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
