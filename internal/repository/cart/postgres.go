package cart

import (
	"context"
	"fmt"
	"io"
	"log"

	"easyshop/internal/domain"
	"easyshop/internal/repository"
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

func (r *postgresRepo) ListLines(ctx context.Context, userID int) ([]domain.CartLine, error) {
	const q = `
SELECT user_id, product_id, quantity
FROM shopping_cart
WHERE user_id = $1
ORDER BY product_id ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("cart repo: list user_id=%d error=%v", userID, err)
		return nil, domain.StorageError("list cart lines", err)
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.UserID, &line.ProductID, &line.Quantity); err != nil {
			return nil, domain.StorageError("scan cart line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list cart lines", err)
	}
	return lines, nil
}

// AddItem inserts the pair with quantity 1 or increments the existing line
// in the same statement, so concurrent adds never lose an increment.
func (r *postgresRepo) AddItem(ctx context.Context, userID, productID int) (int, error) {
	const q = `
INSERT INTO shopping_cart (user_id, product_id, quantity)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = shopping_cart.quantity + 1
RETURNING quantity
`
	var quantity int
	if err := r.pool.QueryRow(ctx, q, userID, productID).Scan(&quantity); err != nil {
		r.logger.Printf("cart repo: add user_id=%d product_id=%d error=%v", userID, productID, err)
		if repository.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
		}
		return 0, domain.StorageError("add cart item", err)
	}
	r.logger.Printf("cart repo: add user_id=%d product_id=%d quantity=%d", userID, productID, quantity)
	return quantity, nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// removes the line instead, since zero-quantity lines are not stored.
func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	if quantity <= 0 {
		cmd, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1 AND product_id = $2`, userID, productID)
		if err != nil {
			r.logger.Printf("cart repo: update->delete user_id=%d product_id=%d error=%v", userID, productID, err)
			return domain.StorageError("remove cart item", err)
		}
		if cmd.RowsAffected() == 0 {
			return fmt.Errorf("cart line user=%d product=%d: %w", userID, productID, domain.ErrNotFound)
		}
		return nil
	}

	const q = `
UPDATE shopping_cart
SET quantity = $1
WHERE user_id = $2 AND product_id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, userID, productID)
	if err != nil {
		r.logger.Printf("cart repo: update user_id=%d product_id=%d error=%v", userID, productID, err)
		return domain.StorageError("update cart quantity", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("cart line user=%d product=%d: %w", userID, productID, domain.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1 AND product_id = $2`, userID, productID); err != nil {
		r.logger.Printf("cart repo: remove user_id=%d product_id=%d error=%v", userID, productID, err)
		return domain.StorageError("remove cart item", err)
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, userID int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Printf("cart repo: clear user_id=%d error=%v", userID, err)
		return false, domain.StorageError("clear cart", err)
	}
	r.logger.Printf("cart repo: clear user_id=%d removed=%d", userID, cmd.RowsAffected())
	return cmd.RowsAffected() > 0, nil
}
