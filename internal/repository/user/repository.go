package user

import (
	"context"

	"easyshop/internal/domain"
)

// Repository reads identity records. Passwords arrive already hashed.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}
