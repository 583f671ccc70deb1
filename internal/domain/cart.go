package domain

import "github.com/shopspring/decimal"

// CartLine is one persisted (user, product, quantity) row. Quantity is
// always at least 1; a product leaves the cart by deleting its line.
type CartLine struct {
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart is assembled from CartLines on every read and never stored.
type Cart struct {
	UserID    int             `json:"userId"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

type CartItem struct {
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
}
