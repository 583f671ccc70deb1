package category

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
)

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT category_id, name, description
FROM categories
ORDER BY category_id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, domain.StorageError("list categories", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list categories", err)
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	const q = `
SELECT category_id, name, description
FROM categories
WHERE category_id = $1
`
	c, err := scanCategory(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("category repo: get id=%d not found", id)
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, $2)
RETURNING category_id
`
	out := c
	if err := r.pool.QueryRow(ctx, q, c.Name, c.Description).Scan(&out.ID); err != nil {
		r.logger.Printf("category repo: create name=%q error=%v", c.Name, err)
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, domain.StorageError("create category", err)
	}
	r.logger.Printf("category repo: created id=%d name=%q", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int, c domain.Category) error {
	const q = `
UPDATE categories
SET name = $1, description = $2
WHERE category_id = $3
`
	cmd, err := r.pool.Exec(ctx, q, c.Name, c.Description, id)
	if err != nil {
		r.logger.Printf("category repo: update id=%d error=%v", id, err)
		return domain.StorageError("update category", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		r.logger.Printf("category repo: delete id=%d error=%v", id, err)
		return domain.StorageError("delete category", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	r.logger.Printf("category repo: deleted id=%d", id)
	return nil
}

// scanCategory maps exactly the (category_id, name, description) column set.
func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("scan category", err)
	}
	return &c, nil
}
