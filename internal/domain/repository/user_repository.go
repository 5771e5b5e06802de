package repository

import (
	"context"
	"time"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

// UserStatsRow contagens brutas de usuários (as taxas derivadas ficam no use case).
type UserStatsRow struct {
	Total    int64
	Active   int64
	Inactive int64
	ByRole   map[string]int64
	Recent   int64 // criados a partir do corte informado
}

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, recentSince time.Time) (*UserStatsRow, error)
}
