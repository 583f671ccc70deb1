package user

import (
	"context"
	"errors"
	"strings"

	"easyshop/internal/domain"
	"easyshop/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, hashed_password, role)
VALUES ($1, $2, $3)
RETURNING user_id, username, hashed_password, role
`
	role := u.Role
	if role == "" {
		role = domain.RoleUser
	}
	out, err := scanUser(r.pool.QueryRow(ctx, q, strings.ToLower(u.Username), u.HashedPassword, role))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
SELECT user_id, username, hashed_password, role
FROM users
WHERE username = lower($1)
`
	return scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	const q = `
SELECT user_id, username, hashed_password, role
FROM users
WHERE user_id = $1
`
	return scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = lower($1))`, username).Scan(&exists)
	if err != nil {
		return false, domain.StorageError("user exists", err)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.HashedPassword, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("scan user", err)
	}
	return &u, nil
}
