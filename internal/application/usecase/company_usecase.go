package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

const contractExpiryHorizonDays = 30

// CompanyUseCase aplica regras de negócio para empresas parceiras.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: time.Now}
}

// Create cria uma nova empresa parceira. Nome é obrigatório; CNPJ duplicado
// devolve domain.ErrDuplicate.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	contractStart, err := parseOptionalDate(in.ContractStart, "contractStart")
	if err != nil {
		return nil, err
	}
	contractEnd, err := parseOptionalDate(in.ContractEnd, "contractEnd")
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.CompanyStatusAtiva
	}
	var commission float64
	if in.CommissionRate != nil {
		commission = *in.CommissionRate
	}
	now := uc.now()
	company := &entity.Company{
		Name:           in.Name,
		CNPJ:           in.CNPJ,
		Email:          in.Email,
		Phone:          in.Phone,
		Website:        in.Website,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		Segment:        in.Segment,
		ContactPerson:  in.ContactPerson,
		ContactEmail:   in.ContactEmail,
		ContactPhone:   in.ContactPhone,
		CommissionRate: commission,
		Status:         status,
		ContractStart:  contractStart,
		ContractEnd:    contractEnd,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID busca uma empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List devolve todas as empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// ListActive devolve somente as empresas com status "Ativa".
func (uc *CompanyUseCase) ListActive(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// ListBySegment devolve as empresas de um segmento.
func (uc *CompanyUseCase) ListBySegment(ctx context.Context, segment string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListBySegment(ctx, segment)
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// ListExpiringContracts devolve empresas ativas com contrato vencendo nos próximos 30 dias.
func (uc *CompanyUseCase) ListExpiringContracts(ctx context.Context) ([]dto.CompanyResponse, error) {
	now := uc.now()
	list, err := uc.repo.ListExpiringContracts(ctx, now, now.AddDate(0, 0, contractExpiryHorizonDays))
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
// Datas de contrato com string vazia limpam o valor.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.CNPJ != nil {
		company.CNPJ = *in.CNPJ
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Website != nil {
		company.Website = *in.Website
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.City != nil {
		company.City = *in.City
	}
	if in.State != nil {
		company.State = *in.State
	}
	if in.ZipCode != nil {
		company.ZipCode = *in.ZipCode
	}
	if in.Segment != nil {
		company.Segment = *in.Segment
	}
	if in.ContactPerson != nil {
		company.ContactPerson = *in.ContactPerson
	}
	if in.ContactEmail != nil {
		company.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		company.ContactPhone = *in.ContactPhone
	}
	if in.CommissionRate != nil {
		company.CommissionRate = *in.CommissionRate
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	if in.ContractStart != nil {
		parsed, err := parseOptionalDate(*in.ContractStart, "contractStart")
		if err != nil {
			return nil, err
		}
		company.ContractStart = parsed
	}
	if in.ContractEnd != nil {
		parsed, err := parseOptionalDate(*in.ContractEnd, "contractEnd")
		if err != nil {
			return nil, err
		}
		company.ContractEnd = parsed
	}
	if in.Notes != nil {
		company.Notes = *in.Notes
	}
	company.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete remove uma empresa definitivamente.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de empresas parceiras.
func (uc *CompanyUseCase) Stats(ctx context.Context) (*dto.CompanyStatsResponse, error) {
	now := uc.now()
	row, err := uc.repo.Stats(ctx, now, now.AddDate(0, 0, contractExpiryHorizonDays))
	if err != nil {
		return nil, err
	}
	return &dto.CompanyStatsResponse{
		TotalCompanies:      row.Total,
		ActiveCompanies:     row.Active,
		InactiveCompanies:   row.Inactive,
		SuspendedCompanies:  row.Suspended,
		AverageCommission:   row.AverageCommission,
		SegmentDistribution: row.Segments,
		ExpiringContracts:   row.ExpiringContracts,
	}, nil
}

// parseOptionalDate interpreta uma data opcional: vazio vira nil.
func parseOptionalDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := dto.ParseISODate(s)
	if err != nil {
		return nil, domain.NewValidationError(field, "formato de data inválido, use ISO-8601")
	}
	return &t, nil
}

func toCompanyResponses(list []*entity.Company) []dto.CompanyResponse {
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		CNPJ:           c.CNPJ,
		Email:          c.Email,
		Phone:          c.Phone,
		Website:        c.Website,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		ZipCode:        c.ZipCode,
		Segment:        c.Segment,
		ContactPerson:  c.ContactPerson,
		ContactEmail:   c.ContactEmail,
		ContactPhone:   c.ContactPhone,
		CommissionRate: c.CommissionRate,
		Status:         c.Status,
		ContractStart:  c.ContractStart,
		ContractEnd:    c.ContractEnd,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
