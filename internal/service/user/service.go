package user

import (
	"context"
	"errors"
	"strings"

	"easyshop/internal/domain"
	userrepo "easyshop/internal/repository/user"
)

// Service resolves authenticated principals to user records. It never
// authenticates; the username is trusted as supplied by the caller.
type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the user for username or domain.ErrUnknownUser.
func (s *Service) Resolve(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUnknownUser
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, err
	}
	return u, nil
}
