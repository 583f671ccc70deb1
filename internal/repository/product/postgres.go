package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"easyshop/internal/domain"
	"easyshop/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `product_id, category_id, name, description, price::text, color, stock, featured, image_url`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1
ORDER BY product_id ASC
`
	result, err := r.queryProducts(ctx, "list products", q, categoryID)
	if err != nil {
		r.logger.Printf("product repo: list category_id=%d error=%v", categoryID, err)
		return nil, err
	}
	r.logger.Printf("product repo: list category_id=%d count=%d", categoryID, len(result))
	return result, nil
}

func (r *postgresRepo) Search(ctx context.Context, f SearchFilter) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE ($1::int IS NULL OR category_id = $1)
  AND ($2::numeric IS NULL OR price >= $2::numeric)
  AND ($3::numeric IS NULL OR price <= $3::numeric)
  AND ($4::text IS NULL OR lower(color) = lower($4))
ORDER BY product_id ASC
`
	result, err := r.queryProducts(ctx, "search products", q, f.CategoryID, decimalArg(f.MinPrice), decimalArg(f.MaxPrice), f.Color)
	if err != nil {
		r.logger.Printf("product repo: search error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: search count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE product_id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("product repo: get id=%d not found", id)
		} else {
			r.logger.Printf("product repo: get id=%d error=%v", id, err)
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (category_id, name, description, price, color, stock, featured, image_url)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
RETURNING product_id, price::text
`
	out := p
	var price string
	err := r.pool.QueryRow(ctx, q,
		p.CategoryID,
		p.Name,
		p.Description,
		p.Price.String(),
		p.Color,
		p.Stock,
		p.Featured,
		p.ImageURL,
	).Scan(&out.ID, &price)
	if err != nil {
		r.logger.Printf("product repo: create name=%q category_id=%d error=%v", p.Name, p.CategoryID, err)
		if repository.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("category %d: %w", p.CategoryID, domain.ErrNotFound)
		}
		return nil, domain.StorageError("create product", err)
	}
	if out.Price, err = decimal.NewFromString(price); err != nil {
		return nil, domain.StorageError("decode product price", err)
	}
	r.logger.Printf("product repo: created id=%d name=%q", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int, p domain.Product) error {
	const q = `
UPDATE products
SET category_id = $1,
    name = $2,
    description = $3,
    price = $4::numeric,
    color = $5,
    stock = $6,
    featured = $7,
    image_url = $8
WHERE product_id = $9
`
	cmd, err := r.pool.Exec(ctx, q,
		p.CategoryID,
		p.Name,
		p.Description,
		p.Price.String(),
		p.Color,
		p.Stock,
		p.Featured,
		p.ImageURL,
		id,
	)
	if err != nil {
		r.logger.Printf("product repo: update id=%d error=%v", id, err)
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("category %d: %w", p.CategoryID, domain.ErrNotFound)
		}
		return domain.StorageError("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return domain.StorageError("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	r.logger.Printf("product repo: deleted id=%d", id)
	return nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, op, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, domain.StorageError(op, err)
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(op, err)
	}
	return result, nil
}

// scanProduct maps the productColumns column set; price arrives as text so
// it can be parsed without losing precision.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var price string
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &price, &p.Color, &p.Stock, &p.Featured, &p.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("scan product", err)
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, domain.StorageError("decode product price", err)
	}
	return &p, nil
}

func decimalArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
