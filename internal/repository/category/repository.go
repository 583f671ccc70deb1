package category

import (
	"context"

	"easyshop/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, c domain.Category) error
	Delete(ctx context.Context, id int) error
}
