package repository

import (
	"context"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// LeadStatsRow contagens de leads por status e por origem.
type LeadStatsRow struct {
	Total    int64
	ByStatus map[string]int64
	BySource map[string]int64
}

// LeadRepository define o porto de persistência para Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id int64) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*LeadStatsRow, error)
}
