package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

const quoteColumns = `id, client_id, client_name, title, description, value, status, representative, valid_until, created_at, updated_at`

// QuoteRepo implementação de QuoteRepository (usável com pool ou tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste uma nova cotação e preenche o ID gerado.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (client_id, client_name, title, description, value, status, representative, valid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		quote.ClientID, quote.ClientName, quote.Title, quote.Description, quote.Value,
		quote.Status, quote.Representative, quote.ValidUntil, quote.CreatedAt, quote.UpdatedAt,
	).Scan(&quote.ID)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID busca uma cotação por ID. Devolve nil sem erro quando não existe.
func (r *QuoteRepo) GetByID(ctx context.Context, id int64) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.ClientID, &q.ClientName, &q.Title, &q.Description, &q.Value,
		&q.Status, &q.Representative, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// List devolve todas as cotações, mais recentes primeiro.
func (r *QuoteRepo) List(ctx context.Context) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

// ListByStatus devolve as cotações com o status dado, mais recentes primeiro.
func (r *QuoteRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE status = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, status)
}

// ListByClient devolve as cotações de um cliente, mais recentes primeiro.
func (r *QuoteRepo) ListByClient(ctx context.Context, clientID int64) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE client_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, clientID)
}

// Update atualiza uma cotação.
func (r *QuoteRepo) Update(ctx context.Context, quote *entity.Quote) error {
	query := `
		UPDATE quotes SET client_id = $2, client_name = $3, title = $4, description = $5,
			value = $6, status = $7, representative = $8, valid_until = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		quote.ID, quote.ClientID, quote.ClientName, quote.Title, quote.Description,
		quote.Value, quote.Status, quote.Representative, quote.ValidUntil, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// Delete remove uma cotação por ID.
func (r *QuoteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// Stats agrega contagens e somas de cotações em uma única consulta.
func (r *QuoteRepo) Stats(ctx context.Context) (*repository.QuoteStatsRow, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pendente'),
			COUNT(*) FILTER (WHERE status = 'Aprovada'),
			COUNT(*) FILTER (WHERE status = 'Rejeitada'),
			COALESCE(SUM(value) FILTER (WHERE status = 'Aprovada'), 0),
			COALESCE(SUM(value) FILTER (WHERE status = 'Pendente'), 0)
		FROM quotes`
	var row repository.QuoteStatsRow
	err := r.q.QueryRow(ctx, query).Scan(
		&row.Total, &row.Pending, &row.Approved, &row.Rejected, &row.ApprovedValue, &row.PendingValue,
	)
	if err != nil {
		return nil, fmt.Errorf("quote stats: %w", err)
	}
	return &row, nil
}

func (r *QuoteRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.ClientID, &q.ClientName, &q.Title, &q.Description, &q.Value,
			&q.Status, &q.Representative, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}
