package cart

import (
	"context"

	"easyshop/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductLookup resolves a product id to its current catalog entry.
type ProductLookup func(ctx context.Context, productID int) (*domain.Product, error)

// Assemble builds the cart view from persisted lines. Every line is priced
// as price * quantity * (1 - discount) and the cart total is the sum of the
// line totals. Lookup errors are returned unchanged.
func Assemble(ctx context.Context, userID int, lines []domain.CartLine, lookup ProductLookup) (*domain.Cart, error) {
	cart := &domain.Cart{
		UserID: userID,
		Items:  make([]domain.CartItem, 0, len(lines)),
		Total:  decimal.Zero,
	}
	for _, line := range lines {
		product, err := lookup(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		item := NewItem(*product, line.Quantity, decimal.Zero)
		cart.Items = append(cart.Items, item)
		cart.ItemCount += item.Quantity
		cart.Total = cart.Total.Add(item.LineTotal)
	}
	return cart, nil
}

// NewItem prices a single cart item. discountPercent is a fraction, 0.1 for 10%.
func NewItem(p domain.Product, quantity int, discountPercent decimal.Decimal) domain.CartItem {
	lineTotal := p.Price.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(1).Sub(discountPercent))
	return domain.CartItem{
		Product:         p,
		Quantity:        quantity,
		DiscountPercent: discountPercent,
		LineTotal:       lineTotal,
	}
}
