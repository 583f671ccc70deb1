package profile

import (
	"context"
	"fmt"
	"strings"

	"easyshop/internal/domain"
	profilerepo "easyshop/internal/repository/profile"
)

// Service manages the single profile attached to each user.
type Service struct {
	repo profilerepo.Repository
}

func New(repo profilerepo.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's profile, or domain.ErrNotFound when none exists.
func (s *Service) Get(ctx context.Context, userID int) (*domain.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("profile for user %d: %w", userID, domain.ErrNotFound)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error) {
	p.UserID = userID
	normalize(&p)
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error) {
	p.UserID = userID
	normalize(&p)
	return s.repo.Update(ctx, userID, p)
}

func normalize(p *domain.Profile) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Address = strings.TrimSpace(p.Address)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.TrimSpace(p.State)
	p.Zip = strings.TrimSpace(p.Zip)
}
