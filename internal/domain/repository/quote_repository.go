package repository

import (
	"context"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// QuoteStatsRow contagens e somas brutas de cotações (taxa de conversão fica no use case).
type QuoteStatsRow struct {
	Total         int64
	Pending       int64
	Approved      int64
	Rejected      int64
	ApprovedValue float64
	PendingValue  float64
}

// QuoteRepository define o porto de persistência para Quote.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id int64) (*entity.Quote, error)
	// List devolve todas as cotações, mais recentes primeiro.
	List(ctx context.Context) ([]*entity.Quote, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Quote, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*QuoteStatsRow, error)
}
