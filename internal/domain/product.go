package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `json:"productId"`
	CategoryID  int             `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"isFeatured"`
	ImageURL    string          `json:"imageUrl"`
}
