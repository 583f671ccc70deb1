package category

import (
	"context"
	"errors"
	"testing"

	"easyshop/internal/domain"
)

type stubRepo struct {
	categories map[int]domain.Category
	nextID     int
}

func newStubRepo() *stubRepo {
	return &stubRepo{categories: map[int]domain.Category{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	for i := 1; i < s.nextID; i++ {
		if c, ok := s.categories[i]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int) (*domain.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *stubRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	c.ID = s.nextID
	s.nextID++
	s.categories[c.ID] = c
	return &c, nil
}

func (s *stubRepo) Update(_ context.Context, id int, c domain.Category) error {
	if _, ok := s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	c.ID = id
	s.categories[id] = c
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int) error {
	if _, ok := s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func TestServiceCreateRoundTrip(t *testing.T) {
	svc := New(newStubRepo())
	ctx := context.Background()

	in := domain.Category{Name: "Music", Description: "Instruments"}
	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	in.ID = created.ID
	if *got != in {
		t.Fatalf("expected %+v, got %+v", in, *got)
	}
}

func TestServiceCreateRequiresName(t *testing.T) {
	svc := New(newStubRepo())
	_, err := svc.Create(context.Background(), domain.Category{Name: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := svc.Update(context.Background(), 1, domain.Category{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input on update, got %v", err)
	}
}

func TestServiceDeleteThenGetIsNotFound(t *testing.T) {
	svc := New(newStubRepo())
	ctx := context.Background()

	if err := svc.Delete(ctx, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
	created, err := svc.Create(ctx, domain.Category{Name: "Toys"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
