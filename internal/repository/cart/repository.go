package cart

import (
	"context"

	"easyshop/internal/domain"
)

// Repository manages shopping_cart rows keyed by (user, product).
type Repository interface {
	ListLines(ctx context.Context, userID int) ([]domain.CartLine, error)
	AddItem(ctx context.Context, userID, productID int) (int, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) (bool, error)
}
