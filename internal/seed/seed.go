package seed

import (
	"context"
	"fmt"

	"easyshop/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	ID          int
	Name        string
	Description string
}

type productSeed struct {
	ID          int
	CategoryID  int
	Name        string
	Description string
	Price       string
	Color       string
	Stock       int
	Featured    bool
	ImageURL    string
}

type userSeed struct {
	Username string
	Role     string
}

// disabledPassword never matches a real hash; seeded accounts authenticate
// through the upstream gateway only.
const disabledPassword = "!"

var (
	categories = []categorySeed{
		{ID: 1, Name: "Electronics", Description: "Explore the latest gadgets and electronic devices."},
		{ID: 2, Name: "Fashion", Description: "Discover trendy clothing and accessories."},
		{ID: 3, Name: "Home & Kitchen", Description: "Find everything you need for your home and kitchen."},
	}

	products = []productSeed{
		{ID: 1, CategoryID: 1, Name: "Smartphone", Description: "A powerful and feature-rich smartphone.", Price: "499.99", Color: "Black", Stock: 50, Featured: true, ImageURL: "smartphone.jpg"},
		{ID: 2, CategoryID: 1, Name: "Laptop", Description: "A high-performance laptop for work and play.", Price: "899.99", Color: "Gray", Stock: 30, ImageURL: "laptop.jpg"},
		{ID: 3, CategoryID: 2, Name: "Men's T-Shirt", Description: "A comfortable cotton t-shirt.", Price: "29.99", Color: "Gray", Stock: 100, ImageURL: "mens-tshirt.jpg"},
		{ID: 4, CategoryID: 2, Name: "Running Shoes", Description: "Lightweight shoes for everyday runs.", Price: "69.99", Color: "Red", Stock: 40, Featured: true, ImageURL: "running-shoes.jpg"},
		{ID: 5, CategoryID: 3, Name: "Coffee Maker", Description: "Brew delicious coffee at home.", Price: "79.99", Color: "White", Stock: 25, ImageURL: "coffee-maker.jpg"},
	}

	users = []userSeed{
		{Username: "admin", Role: domain.RoleAdmin},
		{Username: "user", Role: domain.RoleUser},
	}
)

// Apply inserts demo data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %q: %w", c.Name, err)
		}
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	if err := syncSequences(ctx, pool); err != nil {
		return fmt.Errorf("sync sequences: %w", err)
	}
	for _, u := range users {
		if err := ensureUser(ctx, pool, u); err != nil {
			return fmt.Errorf("ensure user %q: %w", u.Username, err)
		}
	}
	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (category_id, name, description)
VALUES ($1, $2, $3)
ON CONFLICT (category_id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, c.ID, c.Name, c.Description)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (product_id, category_id, name, description, price, color, stock, featured, image_url)
VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9)
ON CONFLICT (product_id) DO UPDATE
SET category_id = EXCLUDED.category_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    color = EXCLUDED.color,
    stock = EXCLUDED.stock,
    featured = EXCLUDED.featured,
    image_url = EXCLUDED.image_url
`
	_, err := pool.Exec(ctx, q, p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Color, p.Stock, p.Featured, p.ImageURL)
	return err
}

// syncSequences moves the serial counters past the explicit ids above so
// later inserts through the API do not collide with seeded rows.
func syncSequences(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
SELECT setval(pg_get_serial_sequence('categories', 'category_id'), (SELECT MAX(category_id) FROM categories)),
       setval(pg_get_serial_sequence('products', 'product_id'), (SELECT MAX(product_id) FROM products))
`
	_, err := pool.Exec(ctx, q)
	return err
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, u userSeed) error {
	const q = `
INSERT INTO users (username, hashed_password, role)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
`
	_, err := pool.Exec(ctx, q, u.Username, disabledPassword, u.Role)
	return err
}
