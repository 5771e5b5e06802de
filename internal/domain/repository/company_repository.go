package repository

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// CompanyStatsRow contagens e agregados brutos de empresas parceiras.
type CompanyStatsRow struct {
	Total             int64
	Active            int64
	Inactive          int64
	Suspended         int64
	AverageCommission float64
	Segments          map[string]int64
	ExpiringContracts int64
}

// CompanyRepository define o porto de persistência para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// List devolve todas as empresas em ordem alfabética.
	List(ctx context.Context) ([]*entity.Company, error)
	ListActive(ctx context.Context) ([]*entity.Company, error)
	ListBySegment(ctx context.Context, segment string) ([]*entity.Company, error)
	// ListExpiringContracts devolve empresas ativas com contrato vencendo entre now e horizon.
	ListExpiringContracts(ctx context.Context, now, horizon time.Time) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, now, horizon time.Time) (*CompanyStatsRow, error)
}
