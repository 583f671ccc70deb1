package product

import (
	"context"

	"easyshop/internal/domain"
	"github.com/shopspring/decimal"
)

// SearchFilter narrows a product search. Nil fields are not applied.
type SearchFilter struct {
	CategoryID *int
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Color      *string
}

type Repository interface {
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	Search(ctx context.Context, f SearchFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int, p domain.Product) error
	Delete(ctx context.Context, id int) error
}
