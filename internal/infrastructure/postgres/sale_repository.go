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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, client_id, client_name, product, value, status, representative, date, created_at, updated_at`

// SaleRepo implementação de SaleRepository (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma nova venda e preenche o ID gerado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (client_id, client_name, product, value, status, representative, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.ClientID, sale.ClientName, sale.Product, sale.Value, sale.Status,
		sale.Representative, sale.Date, sale.CreatedAt, sale.UpdatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID busca uma venda por ID. Devolve nil sem erro quando não existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.ClientName, &s.Product, &s.Value, &s.Status,
		&s.Representative, &s.Date, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devolve todas as vendas, mais recentes primeiro.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC`
	return r.queryList(ctx, query)
}

// ListByDateRange devolve as vendas com data dentro da janela inclusiva.
func (r *SaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE date BETWEEN $1 AND $2 ORDER BY date`
	return r.queryList(ctx, query, start, end)
}

// Update atualiza uma venda.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET client_id = $2, client_name = $3, product = $4, value = $5,
			status = $6, representative = $7, date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.ClientName, sale.Product, sale.Value,
		sale.Status, sale.Representative, sale.Date, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete remove uma venda por ID.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// Stats agrega contagem e valor de vendas por status.
func (r *SaleRepo) Stats(ctx context.Context) (*repository.SaleStatsRow, error) {
	row := &repository.SaleStatsRow{
		CountByStatus: make(map[string]int64),
		ValueByStatus: make(map[string]float64),
	}
	query := `SELECT status, COUNT(*), COALESCE(SUM(value), 0) FROM sales GROUP BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sale stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		var value float64
		if err := rows.Scan(&status, &count, &value); err != nil {
			return nil, fmt.Errorf("scan sale stats: %w", err)
		}
		row.CountByStatus[status] = count
		row.ValueByStatus[status] = value
		row.Total += count
	}
	return row, rows.Err()
}

func (r *SaleRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.Product, &s.Value, &s.Status,
			&s.Representative, &s.Date, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
