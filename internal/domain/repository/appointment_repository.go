package repository

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// AppointmentStatsRow contagens brutas de compromissos.
type AppointmentStatsRow struct {
	Total     int64
	Scheduled int64
	Completed int64
	Cancelled int64
	Today     int64
	Week      int64
}

// AppointmentRepository define o porto de persistência para Appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id int64) (*entity.Appointment, error)
	// List devolve todos os compromissos, mais recentes primeiro.
	List(ctx context.Context) ([]*entity.Appointment, error)
	// ListByDateRange devolve compromissos com data dentro da janela inclusiva, em ordem cronológica.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error)
	// ListUpcoming devolve compromissos "Agendado" dentro da janela, em ordem cronológica.
	ListUpcoming(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error)
	ListByRepresentative(ctx context.Context, representative string) ([]*entity.Appointment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, dayStart, dayEnd, weekStart, weekEnd time.Time) (*AppointmentStatsRow, error)
}
