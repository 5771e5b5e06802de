package repository

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// SaleStatsRow contagens e somas de vendas agrupadas por status.
type SaleStatsRow struct {
	Total         int64
	CountByStatus map[string]int64
	ValueByStatus map[string]float64
}

// SaleRepository define o porto de persistência para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListByDateRange devolve as vendas com data dentro da janela inclusiva.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*SaleStatsRow, error)
}
