package cart

import (
	"context"
	"errors"
	"testing"

	"easyshop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(products map[int]domain.Product) ProductLookup {
	return func(_ context.Context, id int) (*domain.Product, error) {
		p, ok := products[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		return &p, nil
	}
}

func TestAssemble_SingleLine(t *testing.T) {
	lookup := lookupFrom(map[int]domain.Product{
		1: {ID: 1, Name: "Mug", Price: decimal.RequireFromString("10.00")},
	})

	cart, err := Assemble(context.Background(), 7, []domain.CartLine{{UserID: 7, ProductID: 1, Quantity: 2}}, lookup)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.DiscountPercent.IsZero())
	assert.True(t, item.LineTotal.Equal(decimal.NewFromInt(20)), "line total %s", item.LineTotal)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("20.00")), "total %s", cart.Total)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, 7, cart.UserID)
}

func TestAssemble_SumsLinesInOrder(t *testing.T) {
	lookup := lookupFrom(map[int]domain.Product{
		1: {ID: 1, Price: decimal.RequireFromString("499.99")},
		2: {ID: 2, Price: decimal.RequireFromString("0.10")},
	})
	lines := []domain.CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 3},
	}

	cart, err := Assemble(context.Background(), 1, lines, lookup)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Product.ID)
	assert.Equal(t, 2, cart.Items[1].Product.ID)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("500.29")), "total %s", cart.Total)
	assert.Equal(t, 4, cart.ItemCount)
}

func TestAssemble_EmptyCart(t *testing.T) {
	cart, err := Assemble(context.Background(), 1, nil, lookupFrom(nil))
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestAssemble_LookupErrorFails(t *testing.T) {
	boom := errors.New("boom")
	_, err := Assemble(context.Background(), 1, []domain.CartLine{{ProductID: 3, Quantity: 1}},
		func(context.Context, int) (*domain.Product, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestNewItem_AppliesDiscount(t *testing.T) {
	p := domain.Product{Price: decimal.RequireFromString("80.00")}
	item := NewItem(p, 3, decimal.RequireFromString("0.25"))
	assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("180.00")), "line total %s", item.LineTotal)
}
