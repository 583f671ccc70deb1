package product

import (
	"context"
	"strings"

	"easyshop/internal/domain"
	productrepo "easyshop/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *Service) Search(ctx context.Context, f productrepo.SearchFilter) ([]domain.Product, error) {
	if f.Color != nil {
		color := strings.TrimSpace(*f.Color)
		if color == "" {
			f.Color = nil
		} else {
			f.Color = &color
		}
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, domain.Invalid("minPrice greater than maxPrice")
	}
	return s.repo.Search(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int, p domain.Product) error {
	if err := validate(&p); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func validate(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	switch {
	case p.Name == "":
		return domain.Invalid("name required")
	case p.CategoryID <= 0:
		return domain.Invalid("categoryId required")
	case p.Price.IsNegative():
		return domain.Invalid("price must not be negative")
	case p.Stock < 0:
		return domain.Invalid("stock must not be negative")
	}
	return nil
}
