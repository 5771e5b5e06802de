package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

const reportColumns = `id, title, type, description, generated_by, period_start, period_end, data, status, file_path, created_at`

// ReportRepo implementação de ReportRepository. O agregado vai em JSONB.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste um snapshot de relatório e preenche o ID gerado.
func (r *ReportRepo) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (title, type, description, generated_by, period_start, period_end, data, status, file_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		report.Title, report.Type, report.Description, report.GeneratedBy,
		report.PeriodStart, report.PeriodEnd, report.Data, report.Status,
		report.FilePath, report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID busca um relatório por ID. Devolve nil sem erro quando não existe.
func (r *ReportRepo) GetByID(ctx context.Context, id int64) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.Title, &rep.Type, &rep.Description, &rep.GeneratedBy,
		&rep.PeriodStart, &rep.PeriodEnd, &rep.Data, &rep.Status, &rep.FilePath, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// List devolve todos os relatórios, mais recentes primeiro.
func (r *ReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.Title, &rep.Type, &rep.Description, &rep.GeneratedBy,
			&rep.PeriodStart, &rep.PeriodEnd, &rep.Data, &rep.Status, &rep.FilePath, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Delete remove um relatório por ID.
func (r *ReportRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
