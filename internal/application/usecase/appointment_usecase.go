package usecase

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

const defaultAppointmentDuration = 60 // minutos

// AppointmentUseCase aplica regras de negócio para compromissos de agenda.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
	now  func() time.Time
}

// NewAppointmentUseCase constrói o caso de uso com o porto de persistência.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, now: time.Now}
}

// Create cria um novo compromisso. Título, representante e data são obrigatórios.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Title == "" {
		return nil, domain.NewValidationError("title", "")
	}
	if in.Representative == "" {
		return nil, domain.NewValidationError("representative", "")
	}
	if in.AppointmentDate == "" {
		return nil, domain.NewValidationError("appointmentDate", "")
	}
	date, err := dto.ParseISODate(in.AppointmentDate)
	if err != nil {
		return nil, domain.NewValidationError("appointmentDate", "formato de data inválido, use ISO-8601")
	}
	duration := defaultAppointmentDuration
	if in.Duration != nil {
		duration = *in.Duration
	}
	status := in.Status
	if status == "" {
		status = entity.AppointmentStatusAgendado
	}
	apptType := in.Type
	if apptType == "" {
		apptType = entity.AppointmentTypeReuniao
	}
	now := uc.now()
	appointment := &entity.Appointment{
		Title:           in.Title,
		Description:     in.Description,
		ClientID:        in.ClientID,
		ClientName:      in.ClientName,
		Representative:  in.Representative,
		AppointmentDate: date,
		Duration:        duration,
		Location:        in.Location,
		Type:            apptType,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// GetByID busca um compromisso por ID.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}
	return toAppointmentResponse(appointment), nil
}

// List devolve todos os compromissos.
func (uc *AppointmentUseCase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// ListToday devolve os compromissos do dia corrente, em ordem cronológica.
func (uc *AppointmentUseCase) ListToday(ctx context.Context) ([]dto.AppointmentResponse, error) {
	start, end := dayBounds(uc.now())
	list, err := uc.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// ListWeek devolve os compromissos da semana corrente (segunda a domingo).
func (uc *AppointmentUseCase) ListWeek(ctx context.Context) ([]dto.AppointmentResponse, error) {
	start, end := weekBounds(uc.now())
	list, err := uc.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// ListUpcoming devolve os compromissos agendados dos próximos 7 dias.
func (uc *AppointmentUseCase) ListUpcoming(ctx context.Context) ([]dto.AppointmentResponse, error) {
	now := uc.now()
	list, err := uc.repo.ListUpcoming(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// ListByRepresentative devolve os compromissos de um representante.
func (uc *AppointmentUseCase) ListByRepresentative(ctx context.Context, representative string) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.ListByRepresentative(ctx, representative)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// ListByClient devolve os compromissos de um cliente.
func (uc *AppointmentUseCase) ListByClient(ctx context.Context, clientID int64) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponses(list), nil
}

// Update aplica uma atualização parcial: somente campos presentes no corpo mudam.
func (uc *AppointmentUseCase) Update(ctx context.Context, id int64, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}
	if in.Title != nil {
		appointment.Title = *in.Title
	}
	if in.Description != nil {
		appointment.Description = *in.Description
	}
	if in.ClientID != nil {
		appointment.ClientID = in.ClientID
	}
	if in.ClientName != nil {
		appointment.ClientName = *in.ClientName
	}
	if in.Representative != nil {
		appointment.Representative = *in.Representative
	}
	if in.AppointmentDate != nil {
		parsed, err := dto.ParseISODate(*in.AppointmentDate)
		if err != nil {
			return nil, domain.NewValidationError("appointmentDate", "formato de data inválido, use ISO-8601")
		}
		appointment.AppointmentDate = parsed
	}
	if in.Duration != nil {
		appointment.Duration = *in.Duration
	}
	if in.Location != nil {
		appointment.Location = *in.Location
	}
	if in.Type != nil {
		appointment.Type = *in.Type
	}
	if in.Status != nil {
		appointment.Status = *in.Status
	}
	appointment.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// Delete remove um compromisso definitivamente.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id int64) error {
	appointment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Stats calcula estatísticas de compromissos, incluindo os do dia e da semana corrente.
func (uc *AppointmentUseCase) Stats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	now := uc.now()
	dayStart, dayEnd := dayBounds(now)
	weekStart, weekEnd := weekBounds(now)
	row, err := uc.repo.Stats(ctx, dayStart, dayEnd, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	out := &dto.AppointmentStatsResponse{
		TotalAppointments:     row.Total,
		ScheduledAppointments: row.Scheduled,
		CompletedAppointments: row.Completed,
		CancelledAppointments: row.Cancelled,
		TodayAppointments:     row.Today,
		WeekAppointments:      row.Week,
	}
	if row.Total > 0 {
		out.CompletionRate = float64(row.Completed) / float64(row.Total) * 100
	}
	return out, nil
}

// dayBounds devolve [início, fim) do dia local de t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// weekBounds devolve [segunda, segunda+7d) da semana local de t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo fecha a semana
	}
	dayStart, _ := dayBounds(t)
	start := dayStart.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

func toAppointmentResponses(list []*entity.Appointment) []dto.AppointmentResponse {
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return items
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		Representative:  a.Representative,
		AppointmentDate: a.AppointmentDate,
		Duration:        a.Duration,
		Location:        a.Location,
		Type:            a.Type,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
