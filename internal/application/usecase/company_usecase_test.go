package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// memCompanyRepo guarda empresas em memória e registra o horizonte pedido.
type memCompanyRepo struct {
	nextID      int64
	byID        map[int64]*entity.Company
	lastNow     time.Time
	lastHorizon time.Time
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{byID: make(map[int64]*entity.Company)}
}

func (m *memCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}
func (m *memCompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (m *memCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) { return nil, nil }
func (m *memCompanyRepo) ListActive(ctx context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0)
	for _, c := range m.byID {
		if c.Status == entity.CompanyStatusAtiva {
			out = append(out, c)
		}
	}
	return out, nil
}
func (m *memCompanyRepo) ListBySegment(ctx context.Context, segment string) ([]*entity.Company, error) {
	return nil, nil
}
func (m *memCompanyRepo) ListExpiringContracts(ctx context.Context, now, horizon time.Time) ([]*entity.Company, error) {
	m.lastNow, m.lastHorizon = now, horizon
	return nil, nil
}
func (m *memCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}
func (m *memCompanyRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memCompanyRepo) Stats(ctx context.Context, now, horizon time.Time) (*repository.CompanyStatsRow, error) {
	m.lastNow, m.lastHorizon = now, horizon
	return &repository.CompanyStatsRow{}, nil
}

func TestCompanyCreate_NomeObrigatorio(t *testing.T) {
	uc := NewCompanyUseCase(newMemCompanyRepo())

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{CNPJ: "12.345.678/0001-90"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestCompanyCreate_DatasDeContratoOpcionais(t *testing.T) {
	uc := NewCompanyUseCase(newMemCompanyRepo())

	out, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "TechSolutions Brasil Ltda",
	})
	require.NoError(t, err)
	assert.Nil(t, out.ContractStart, "data vazia fica nil, não zero-value")
	assert.Nil(t, out.ContractEnd)
	assert.Equal(t, entity.CompanyStatusAtiva, out.Status, "status vazio vira Ativa")
}

func TestCompanyCreate_DataDeContratoInvalidaNomeiaOCampo(t *testing.T) {
	uc := NewCompanyUseCase(newMemCompanyRepo())

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:        "TechSolutions",
		ContractEnd: "31/12/2025",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "contractEnd", verr.Field)
}

func TestCompanyUpdate_StringVaziaLimpaAData(t *testing.T) {
	uc := NewCompanyUseCase(newMemCompanyRepo())

	created, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:          "TechSolutions",
		ContractStart: "2025-01-01",
		ContractEnd:   "2025-12-31",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ContractEnd)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCompanyRequest{
		ContractEnd: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, out.ContractEnd, "string vazia presente no corpo limpa a data")
	assert.NotNil(t, out.ContractStart, "campo ausente no corpo não muda")
}

func TestCompanyListExpiringContracts_HorizonteDe30Dias(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := NewCompanyUseCase(repo)
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return ref }

	_, err := uc.ListExpiringContracts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ref, repo.lastNow)
	assert.Equal(t, ref.AddDate(0, 0, 30), repo.lastHorizon)
}

func TestCustomerCreate_NomeEEmailObrigatorios(t *testing.T) {
	uc := NewCustomerUseCase(&fakeCustomerRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Email: "joao@exemplo.com"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "João"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestCustomerStats_TaxaDeCrescimentoComZeroGuard(t *testing.T) {
	uc := NewCustomerUseCase(&fakeCustomerRepo{total: 40, recent: 10})

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(25), out.GrowthRate)

	uc = NewCustomerUseCase(&fakeCustomerRepo{})
	out, err = uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(0), out.GrowthRate, "base vazia não divide por zero")
}
