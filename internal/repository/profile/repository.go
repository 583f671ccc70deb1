package profile

import (
	"context"

	"easyshop/internal/domain"
)

// Repository persists one profile row per user.
type Repository interface {
	Create(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	// GetByUserID returns nil without an error when the user has no profile.
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error)
}
