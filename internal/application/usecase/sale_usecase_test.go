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

// memSaleRepo guarda vendas em memória para exercitar o caso de uso.
type memSaleRepo struct {
	nextID int64
	byID   map[int64]*entity.Sale
	stats  repository.SaleStatsRow
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{byID: make(map[int64]*entity.Sale)}
}

func (m *memSaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}
func (m *memSaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (m *memSaleRepo) List(ctx context.Context) ([]*entity.Sale, error) { return nil, nil }
func (m *memSaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	return nil, nil
}
func (m *memSaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}
func (m *memSaleRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memSaleRepo) Stats(ctx context.Context) (*repository.SaleStatsRow, error) {
	return &m.stats, nil
}

func float64Ptr(v float64) *float64 { return &v }
func strPtr(s string) *string       { return &s }

func TestSaleCreate_CamposObrigatorios(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	cases := []struct {
		field string
		in    dto.CreateSaleRequest
	}{
		{"clientName", dto.CreateSaleRequest{Product: "CRM Pro", Value: float64Ptr(100)}},
		{"product", dto.CreateSaleRequest{ClientName: "João", Value: float64Ptr(100)}},
		{"value", dto.CreateSaleRequest{ClientName: "João", Product: "CRM Pro"}},
	}
	for _, tc := range cases {
		_, err := uc.Create(context.Background(), tc.in)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "campo %s ausente deve falhar", tc.field)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestSaleCreate_DefaultsStatusEData(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ClientName: "João Silva",
		Product:    "CRM Pro",
		Value:      float64Ptr(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPendente, out.Status, "status vazio vira Pendente")
	assert.WithinDuration(t, time.Now(), out.Date, 5*time.Second, "data vazia usa o momento atual")
}

func TestSaleCreate_DataInvalidaNomeiaOCampo(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ClientName: "João Silva",
		Product:    "CRM Pro",
		Value:      float64Ptr(1500),
		Date:       "31/12/2025",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestSaleUpdate_SomenteCamposPresentesMudam(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ClientName:     "João Silva",
		Product:        "CRM Pro",
		Value:          float64Ptr(1500),
		Representative: "Carlos Mendes",
		Status:         entity.SaleStatusPendente,
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Status: strPtr(entity.SaleStatusConcluida),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusConcluida, out.Status)
	assert.Equal(t, "João Silva", out.ClientName, "campo ausente no corpo não muda")
	assert.Equal(t, "CRM Pro", out.Product)
	assert.Equal(t, float64(1500), out.Value)
	assert.Equal(t, "Carlos Mendes", out.Representative)
}

func TestSaleUpdate_InexistenteRetornaNil(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	out, err := uc.Update(context.Background(), 99, dto.UpdateSaleRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "venda inexistente devolve nil para o handler responder 404")
}

func TestSaleDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleStats_TaxaDeConclusao(t *testing.T) {
	repo := newMemSaleRepo()
	repo.stats = repository.SaleStatsRow{
		Total: 4,
		CountByStatus: map[string]int64{
			entity.SaleStatusConcluida: 3,
			entity.SaleStatusPendente:  1,
		},
		ValueByStatus: map[string]float64{
			entity.SaleStatusConcluida: 900,
			entity.SaleStatusPendente:  100,
		},
	}
	uc := NewSaleUseCase(repo)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.TotalSales)
	assert.Equal(t, float64(75), out.CompletionRate)
}

func TestSaleStats_SemVendasTaxaZero(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo())

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(0), out.CompletionRate)
}
