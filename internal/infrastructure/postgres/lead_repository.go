package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementação de LeadRepository (usável com pool ou tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste um novo lead e preenche o ID gerado.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (name, email, status, source, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		lead.Name, lead.Email, lead.Status, lead.Source, lead.AssignedTo,
		lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID busca um lead por ID. Devolve nil sem erro quando não existe.
func (r *LeadRepo) GetByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, status, source, assigned_to, created_at, updated_at
		FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Email, &l.Status, &l.Source, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List devolve todos os leads, mais recentes primeiro.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, status, source, assigned_to, created_at, updated_at
		FROM leads ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Status, &l.Source, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update atualiza um lead.
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET name = $2, email = $3, status = $4, source = $5, assigned_to = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Status, lead.Source, lead.AssignedTo, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete remove um lead por ID.
func (r *LeadRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// CountAll conta todos os leads.
func (r *LeadRepo) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return total, nil
}

// Stats agrega contagens de leads por status e por origem.
func (r *LeadRepo) Stats(ctx context.Context) (*repository.LeadStatsRow, error) {
	row := &repository.LeadStatsRow{
		ByStatus: make(map[string]int64),
		BySource: make(map[string]int64),
	}
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("lead stats by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan lead status: %w", err)
		}
		row.ByStatus[status] = count
		row.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	srcRows, err := r.q.Query(ctx, `SELECT source, COUNT(*) FROM leads WHERE source <> '' GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("lead stats by source: %w", err)
	}
	defer srcRows.Close()
	for srcRows.Next() {
		var source string
		var count int64
		if err := srcRows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("scan lead source: %w", err)
		}
		row.BySource[source] = count
	}
	return row, srcRows.Err()
}
