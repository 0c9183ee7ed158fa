package services

import (
	"context"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
)

type ICartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	PushCartItem(ctx context.Context, userID uuid.UUID, item models.CartItem) error
	PullCartEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error)
}

type CartService struct {
	cartRepo ICartRepository
}

func NewCartService(cr ICartRepository) *CartService {
	return &CartService{cartRepo: cr}
}

// AddItem appends the item as a new cart entry. Adding the same product
// twice yields two entries; the cart is a multiset, not a set.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, item models.CartItem) (*models.CartItem, error) {
	item.EntryID = uuid.New()
	if err := s.cartRepo.PushCartItem(ctx, userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem removes the first cart entry matching the product id. With
// duplicates present only one instance is removed per call. The pull
// targets the entry's unique id, so a concurrent remove of the same
// entry is reported as not found rather than removing a second copy.
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) error {
	user, err := s.cartRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	var entryID uuid.UUID
	found := false
	for _, entry := range user.Cart {
		if entry.ProductID == productID {
			entryID = entry.EntryID
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrItemNotFound
	}

	removed, err := s.cartRepo.PullCartEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrItemNotFound
	}
	return nil
}

// ListItems returns the cart snapshot in insertion order.
func (s *CartService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	user, err := s.cartRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}
