package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, cnpj, email, phone, website, address, city, state, zip_code, segment,
	contact_person, contact_email, contact_phone, commission_rate, status, contract_start, contract_end,
	notes, created_at, updated_at`

// CompanyRepo implementação de CompanyRepository (usável com pool ou tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste uma nova empresa e preenche o ID gerado.
// CNPJ repetido devolve domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, cnpj, email, phone, website, address, city, state, zip_code, segment,
			contact_person, contact_email, contact_phone, commission_rate, status, contract_start, contract_end,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		company.Name, company.CNPJ, company.Email, company.Phone, company.Website,
		company.Address, company.City, company.State, company.ZipCode, company.Segment,
		company.ContactPerson, company.ContactEmail, company.ContactPhone, company.CommissionRate,
		company.Status, company.ContractStart, company.ContractEnd, company.Notes,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID busca uma empresa por ID. Devolve nil sem erro quando não existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Phone, &c.Website, &c.Address, &c.City, &c.State,
		&c.ZipCode, &c.Segment, &c.ContactPerson, &c.ContactEmail, &c.ContactPhone, &c.CommissionRate,
		&c.Status, &c.ContractStart, &c.ContractEnd, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List devolve todas as empresas em ordem alfabética.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`
	return r.queryList(ctx, query)
}

// ListActive devolve as empresas com status "Ativa".
func (r *CompanyRepo) ListActive(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE status = 'Ativa' ORDER BY name`
	return r.queryList(ctx, query)
}

// ListBySegment devolve as empresas de um segmento.
func (r *CompanyRepo) ListBySegment(ctx context.Context, segment string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE segment = $1 ORDER BY name`
	return r.queryList(ctx, query, segment)
}

// ListExpiringContracts devolve empresas ativas com contrato vencendo entre now e horizon.
func (r *CompanyRepo) ListExpiringContracts(ctx context.Context, now, horizon time.Time) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE status = 'Ativa' AND contract_end IS NOT NULL AND contract_end BETWEEN $1 AND $2
		ORDER BY contract_end`
	return r.queryList(ctx, query, now, horizon)
}

// Update atualiza uma empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, cnpj = $3, email = $4, phone = $5, website = $6, address = $7,
			city = $8, state = $9, zip_code = $10, segment = $11, contact_person = $12, contact_email = $13,
			contact_phone = $14, commission_rate = $15, status = $16, contract_start = $17, contract_end = $18,
			notes = $19, updated_at = $20
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CNPJ, company.Email, company.Phone, company.Website,
		company.Address, company.City, company.State, company.ZipCode, company.Segment,
		company.ContactPerson, company.ContactEmail, company.ContactPhone, company.CommissionRate,
		company.Status, company.ContractStart, company.ContractEnd, company.Notes, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete remove uma empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// Stats agrega contagens, comissão média e contratos vencendo na janela dada,
// mais a distribuição por segmento.
func (r *CompanyRepo) Stats(ctx context.Context, now, horizon time.Time) (*repository.CompanyStatsRow, error) {
	row := &repository.CompanyStatsRow{Segments: make(map[string]int64)}
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Ativa'),
			COUNT(*) FILTER (WHERE status = 'Inativa'),
			COUNT(*) FILTER (WHERE status = 'Suspensa'),
			COALESCE(AVG(commission_rate), 0),
			COUNT(*) FILTER (WHERE status = 'Ativa' AND contract_end IS NOT NULL AND contract_end BETWEEN $1 AND $2)
		FROM companies`
	err := r.q.QueryRow(ctx, query, now, horizon).Scan(
		&row.Total, &row.Active, &row.Inactive, &row.Suspended, &row.AverageCommission, &row.ExpiringContracts,
	)
	if err != nil {
		return nil, fmt.Errorf("company stats: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT segment, COUNT(*) FROM companies WHERE segment <> '' GROUP BY segment`)
	if err != nil {
		return nil, fmt.Errorf("company stats by segment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var segment string
		var count int64
		if err := rows.Scan(&segment, &count); err != nil {
			return nil, fmt.Errorf("scan company segment: %w", err)
		}
		row.Segments[segment] = count
	}
	return row, rows.Err()
}

func (r *CompanyRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Phone, &c.Website, &c.Address, &c.City,
			&c.State, &c.ZipCode, &c.Segment, &c.ContactPerson, &c.ContactEmail, &c.ContactPhone,
			&c.CommissionRate, &c.Status, &c.ContractStart, &c.ContractEnd, &c.Notes,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
