package cart

import (
	"context"
	"errors"
	"io"
	"log"

	"easyshop/internal/domain"
	cartrepo "easyshop/internal/repository/cart"
)

type Service struct {
	repo        cartrepo.Repository
	productRepo productRepo
	logger      *log.Logger
}

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

func New(repo cartrepo.Repository, productRepo productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, productRepo: productRepo, logger: logger}
}

// Get assembles the user's cart from its stored lines. Lines whose product
// has left the catalog are skipped and logged rather than failing the read.
func (s *Service) Get(ctx context.Context, userID int) (*domain.Cart, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	live := make([]domain.CartLine, 0, len(lines))
	products := make(map[int]*domain.Product, len(lines))
	for _, line := range lines {
		p, err := s.productRepo.GetByID(ctx, line.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("cart service: user_id=%d product_id=%d orphaned line skipped", userID, line.ProductID)
			continue
		}
		if err != nil {
			return nil, err
		}
		products[line.ProductID] = p
		live = append(live, line)
	}

	return Assemble(ctx, userID, live, func(_ context.Context, id int) (*domain.Product, error) {
		return products[id], nil
	})
}

func (s *Service) AddItem(ctx context.Context, userID, productID int) (*domain.Cart, error) {
	if productID <= 0 {
		return nil, domain.Invalid("productId required")
	}
	if _, err := s.repo.AddItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SetQuantity replaces the quantity of a product already in the cart. A
// quantity of zero or less removes the product.
func (s *Service) SetQuantity(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error) {
	if err := s.repo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID int) (*domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID int) (*domain.Cart, error) {
	removed, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return nil, err
	}
	if removed {
		s.logger.Printf("cart service: user_id=%d cleared", userID)
	}
	return s.Get(ctx, userID)
}
