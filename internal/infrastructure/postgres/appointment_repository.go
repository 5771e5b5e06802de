package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, title, description, client_id, client_name, representative, appointment_date, duration, location, type, status, created_at, updated_at`

// AppointmentRepo implementação de AppointmentRepository (usável com pool ou tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste um novo compromisso e preenche o ID gerado.
func (r *AppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (title, description, client_id, client_name, representative, appointment_date, duration, location, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		appointment.Title, appointment.Description, appointment.ClientID, appointment.ClientName,
		appointment.Representative, appointment.AppointmentDate, appointment.Duration,
		appointment.Location, appointment.Type, appointment.Status,
		appointment.CreatedAt, appointment.UpdatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID busca um compromisso por ID. Devolve nil sem erro quando não existe.
func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.ClientID, &a.ClientName, &a.Representative,
		&a.AppointmentDate, &a.Duration, &a.Location, &a.Type, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// List devolve todos os compromissos, mais recentes primeiro.
func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY appointment_date DESC`
	return r.queryList(ctx, query)
}

// ListByDateRange devolve compromissos com data dentro da janela [start, end), em ordem cronológica.
func (r *AppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE appointment_date >= $1 AND appointment_date < $2 ORDER BY appointment_date`
	return r.queryList(ctx, query, start, end)
}

// ListUpcoming devolve compromissos "Agendado" dentro da janela, em ordem cronológica.
func (r *AppointmentRepo) ListUpcoming(ctx context.Context, start, end time.Time) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE status = 'Agendado' AND appointment_date >= $1 AND appointment_date < $2
		ORDER BY appointment_date`
	return r.queryList(ctx, query, start, end)
}

// ListByRepresentative devolve os compromissos de um representante, em ordem cronológica.
func (r *AppointmentRepo) ListByRepresentative(ctx context.Context, representative string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE representative = $1 ORDER BY appointment_date`
	return r.queryList(ctx, query, representative)
}

// ListByClient devolve os compromissos de um cliente, em ordem cronológica.
func (r *AppointmentRepo) ListByClient(ctx context.Context, clientID int64) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE client_id = $1 ORDER BY appointment_date`
	return r.queryList(ctx, query, clientID)
}

// Update atualiza um compromisso.
func (r *AppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		UPDATE appointments SET title = $2, description = $3, client_id = $4, client_name = $5,
			representative = $6, appointment_date = $7, duration = $8, location = $9,
			type = $10, status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		appointment.ID, appointment.Title, appointment.Description, appointment.ClientID,
		appointment.ClientName, appointment.Representative, appointment.AppointmentDate,
		appointment.Duration, appointment.Location, appointment.Type, appointment.Status,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete remove um compromisso por ID.
func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// Stats agrega contagens de compromissos, incluindo as janelas do dia e da semana.
func (r *AppointmentRepo) Stats(ctx context.Context, dayStart, dayEnd, weekStart, weekEnd time.Time) (*repository.AppointmentStatsRow, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Agendado'),
			COUNT(*) FILTER (WHERE status = 'Concluído'),
			COUNT(*) FILTER (WHERE status = 'Cancelado'),
			COUNT(*) FILTER (WHERE appointment_date >= $1 AND appointment_date < $2),
			COUNT(*) FILTER (WHERE appointment_date >= $3 AND appointment_date < $4)
		FROM appointments`
	var row repository.AppointmentStatsRow
	err := r.q.QueryRow(ctx, query, dayStart, dayEnd, weekStart, weekEnd).Scan(
		&row.Total, &row.Scheduled, &row.Completed, &row.Cancelled, &row.Today, &row.Week,
	)
	if err != nil {
		return nil, fmt.Errorf("appointment stats: %w", err)
	}
	return &row, nil
}

func (r *AppointmentRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.ClientID, &a.ClientName, &a.Representative,
			&a.AppointmentDate, &a.Duration, &a.Location, &a.Type, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
