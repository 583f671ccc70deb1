package profile

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

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	const q = `
INSERT INTO profiles (user_id, first_name, last_name, phone, email, address, city, state, zip)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING user_id, first_name, last_name, phone, email, address, city, state, zip
`
	out, err := scanProfile(r.pool.QueryRow(ctx, q,
		p.UserID, p.FirstName, p.LastName, p.Phone, p.Email, p.Address, p.City, p.State, p.Zip,
	))
	if err != nil {
		r.logger.Printf("profile repo: create user_id=%d error=%v", p.UserID, err)
		switch {
		case repository.IsUniqueViolation(err):
			return nil, domain.ErrAlreadyExists
		case repository.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("user %d: %w", p.UserID, domain.ErrNotFound)
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	const q = `
SELECT user_id, first_name, last_name, phone, email, address, city, state, zip
FROM profiles
WHERE user_id = $1
`
	p, err := scanProfile(r.pool.QueryRow(ctx, q, userID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.Printf("profile repo: get user_id=%d error=%v", userID, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Update(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error) {
	const q = `
UPDATE profiles
SET first_name = $1,
    last_name = $2,
    phone = $3,
    email = $4,
    address = $5,
    city = $6,
    state = $7,
    zip = $8
WHERE user_id = $9
RETURNING user_id, first_name, last_name, phone, email, address, city, state, zip
`
	out, err := scanProfile(r.pool.QueryRow(ctx, q,
		p.FirstName, p.LastName, p.Phone, p.Email, p.Address, p.City, p.State, p.Zip, userID,
	))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("profile repo: update user_id=%d error=%v", userID, err)
		}
		return nil, err
	}
	return out, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.Address, &p.City, &p.State, &p.Zip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("scan profile", err)
	}
	return &p, nil
}
