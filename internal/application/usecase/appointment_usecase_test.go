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

// memAppointmentRepo guarda compromissos em memória e registra as janelas pedidas.
type memAppointmentRepo struct {
	nextID    int64
	byID      map[int64]*entity.Appointment
	lastStart time.Time
	lastEnd   time.Time
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{byID: make(map[int64]*entity.Appointment)}
}

func (m *memAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}
func (m *memAppointmentRepo) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (m *memAppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	return nil, nil
}
func (m *memAppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error) {
	m.lastStart, m.lastEnd = start, end
	out := make([]*entity.Appointment, 0)
	for _, a := range m.byID {
		if !a.AppointmentDate.Before(start) && a.AppointmentDate.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *memAppointmentRepo) ListUpcoming(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error) {
	m.lastStart, m.lastEnd = start, end
	out := make([]*entity.Appointment, 0)
	for _, a := range m.byID {
		if a.Status != entity.AppointmentStatusAgendado {
			continue
		}
		if !a.AppointmentDate.Before(start) && a.AppointmentDate.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *memAppointmentRepo) ListByRepresentative(ctx context.Context, representative string) ([]*entity.Appointment, error) {
	return nil, nil
}
func (m *memAppointmentRepo) ListByClient(ctx context.Context, clientID int64) ([]*entity.Appointment, error) {
	return nil, nil
}
func (m *memAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}
func (m *memAppointmentRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memAppointmentRepo) Stats(ctx context.Context, dayStart, dayEnd, weekStart, weekEnd time.Time) (*repository.AppointmentStatsRow, error) {
	return &repository.AppointmentStatsRow{}, nil
}

func TestAppointmentCreate_Defaults(t *testing.T) {
	uc := NewAppointmentUseCase(newMemAppointmentRepo())

	out, err := uc.Create(context.Background(), dto.CreateAppointmentRequest{
		Title:           "Reunião de alinhamento",
		Representative:  "Carlos Mendes",
		AppointmentDate: "2025-03-20T14:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusAgendado, out.Status)
	assert.Equal(t, entity.AppointmentTypeReuniao, out.Type)
	assert.Equal(t, 60, out.Duration, "duração vazia usa 60 minutos")
}

func TestAppointmentCreate_DataInvalidaNomeiaOCampo(t *testing.T) {
	uc := NewAppointmentUseCase(newMemAppointmentRepo())

	_, err := uc.Create(context.Background(), dto.CreateAppointmentRequest{
		Title:           "Reunião",
		Representative:  "Carlos Mendes",
		AppointmentDate: "20/03/2025 14h",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "appointmentDate", verr.Field)
}

func TestDayBounds_MeiaNoiteAteMeiaNoite(t *testing.T) {
	ref := time.Date(2025, time.March, 19, 15, 42, 10, 0, time.UTC)

	start, end := dayBounds(ref)
	assert.Equal(t, time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekBounds_ComecaNaSegunda(t *testing.T) {
	// 2025-03-19 é uma quarta; a semana vai de 17 (segunda) a 24 exclusivo.
	quarta := time.Date(2025, time.March, 19, 15, 0, 0, 0, time.UTC)

	start, end := weekBounds(quarta)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekBounds_DomingoFechaASemana(t *testing.T) {
	domingo := time.Date(2025, time.March, 23, 10, 0, 0, 0, time.UTC)

	start, end := weekBounds(domingo)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), start,
		"domingo ainda pertence à semana que começou na segunda anterior")
	assert.Equal(t, time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC), end)
}

func TestListToday_UsaJanelaDoDia(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewAppointmentUseCase(repo)
	ref := time.Date(2025, time.March, 19, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return ref }

	hoje := &entity.Appointment{
		Title:           "Hoje",
		AppointmentDate: time.Date(2025, time.March, 19, 16, 0, 0, 0, time.UTC),
		Status:          entity.AppointmentStatusAgendado,
	}
	amanha := &entity.Appointment{
		Title:           "Amanhã",
		AppointmentDate: time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC),
		Status:          entity.AppointmentStatusAgendado,
	}
	require.NoError(t, repo.Create(context.Background(), hoje))
	require.NoError(t, repo.Create(context.Background(), amanha))

	out, err := uc.ListToday(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Hoje", out[0].Title)
}

func TestListUpcoming_ProximosSeteDias(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewAppointmentUseCase(repo)
	ref := time.Date(2025, time.March, 19, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return ref }

	_, err := uc.ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ref, repo.lastStart)
	assert.Equal(t, ref.AddDate(0, 0, 7), repo.lastEnd)
}
