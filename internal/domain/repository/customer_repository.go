package repository

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// CustomerRepository define o porto de persistência para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}
