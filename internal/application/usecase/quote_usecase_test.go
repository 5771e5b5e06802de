package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// memQuoteRepo guarda cotações em memória para exercitar o caso de uso.
type memQuoteRepo struct {
	nextID int64
	byID   map[int64]*entity.Quote
	stats  repository.QuoteStatsRow
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{byID: make(map[int64]*entity.Quote)}
}

func (m *memQuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	m.nextID++
	q.ID = m.nextID
	cp := *q
	m.byID[q.ID] = &cp
	return nil
}
func (m *memQuoteRepo) GetByID(ctx context.Context, id int64) (*entity.Quote, error) {
	q, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}
func (m *memQuoteRepo) List(ctx context.Context) ([]*entity.Quote, error) { return nil, nil }
func (m *memQuoteRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0)
	for _, q := range m.byID {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}
func (m *memQuoteRepo) ListByClient(ctx context.Context, clientID int64) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0)
	for _, q := range m.byID {
		if q.ClientID == clientID {
			out = append(out, q)
		}
	}
	return out, nil
}
func (m *memQuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	cp := *q
	m.byID[q.ID] = &cp
	return nil
}
func (m *memQuoteRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memQuoteRepo) Stats(ctx context.Context) (*repository.QuoteStatsRow, error) {
	return &m.stats, nil
}

func TestQuoteCreate_ValidUntilObrigatorio(t *testing.T) {
	uc := NewQuoteUseCase(newMemQuoteRepo())

	_, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientName: "João Silva",
		Title:      "Proposta CRM",
		Value:      float64Ptr(5000),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "validUntil", verr.Field)
}

func TestQuoteCreate_ValidUntilInvalidoNomeiaOCampo(t *testing.T) {
	uc := NewQuoteUseCase(newMemQuoteRepo())

	_, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientName: "João Silva",
		Title:      "Proposta CRM",
		Value:      float64Ptr(5000),
		ValidUntil: "31/12/2025",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "validUntil", verr.Field)
}

func TestQuoteCreate_StatusDefaultPendente(t *testing.T) {
	uc := NewQuoteUseCase(newMemQuoteRepo())

	out, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientName: "João Silva",
		Title:      "Proposta CRM",
		Value:      float64Ptr(5000),
		ValidUntil: "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPendente, out.Status)
	assert.Equal(t, 2025, out.ValidUntil.Year())
}

func TestQuoteStats_TaxaDeConversao(t *testing.T) {
	repo := newMemQuoteRepo()
	repo.stats = repository.QuoteStatsRow{
		Total:         8,
		Pending:       4,
		Approved:      2,
		Rejected:      2,
		ApprovedValue: 12000,
		PendingValue:  8000,
	}
	uc := NewQuoteUseCase(repo)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), out.TotalQuotes)
	assert.Equal(t, float64(25), out.ConversionRate)
	assert.Equal(t, float64(12000), out.ApprovedValue)
}

func TestQuoteStats_SemCotacoesTaxaZero(t *testing.T) {
	uc := NewQuoteUseCase(newMemQuoteRepo())

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalQuotes)
	assert.Equal(t, float64(0), out.ConversionRate,
		"sem cotações a taxa é zero, nunca NaN")
}

func TestQuoteUpdate_AtualizacaoParcial(t *testing.T) {
	repo := newMemQuoteRepo()
	uc := NewQuoteUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientName: "João Silva",
		Title:      "Proposta CRM",
		Value:      float64Ptr(5000),
		ValidUntil: "2025-12-31",
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateQuoteRequest{
		Status: strPtr(entity.QuoteStatusAprovada),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAprovada, out.Status)
	assert.Equal(t, "Proposta CRM", out.Title, "campo ausente no corpo não muda")
	assert.Equal(t, float64(5000), out.Value)
}
