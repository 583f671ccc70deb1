package profile

import (
	"context"
	"testing"

	"easyshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	profiles map[int]domain.Profile
}

func (s *stubRepo) Create(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	s.profiles[p.UserID] = p
	return &p, nil
}

func (s *stubRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, userID int, p domain.Profile) (*domain.Profile, error) {
	if _, ok := s.profiles[userID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.profiles[userID] = p
	return &p, nil
}

func TestGetMissingProfileIsNotFound(t *testing.T) {
	svc := New(&stubRepo{profiles: map[int]domain.Profile{}})
	_, err := svc.Get(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBindsUserAndNormalizes(t *testing.T) {
	repo := &stubRepo{profiles: map[int]domain.Profile{}}
	svc := New(repo)

	created, err := svc.Create(context.Background(), 5, domain.Profile{UserID: 99, FirstName: " Ada ", Email: " Ada@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, 5, created.UserID)
	assert.Equal(t, "Ada", created.FirstName)
	assert.Equal(t, "ada@example.com", created.Email)

	got, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestUpdateMissingProfile(t *testing.T) {
	svc := New(&stubRepo{profiles: map[int]domain.Profile{}})
	_, err := svc.Update(context.Background(), 1, domain.Profile{City: "Austin"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
