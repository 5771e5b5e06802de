package repository

import (
	"context"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// ReportRepository define o porto de persistência para snapshots de relatórios.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id int64) (*entity.Report, error)
	// List devolve todos os relatórios, mais recentes primeiro.
	List(ctx context.Context) ([]*entity.Report, error)
	Delete(ctx context.Context, id int64) error
}
