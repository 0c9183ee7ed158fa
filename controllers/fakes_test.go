package controllers_test

import (
	"context"
	"sync"
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
)

// memoryStore is an in-memory user/order store backing the controller
// tests, mirroring the atomic update semantics of the Mongo repositories.
type memoryStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*models.User
	orders []models.Order
	byRef  map[string]int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[uuid.UUID]*models.User),
		byRef: make(map[string]int),
	}
}

func (s *memoryStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *memoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return s.snapshot(user), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return s.snapshot(user), nil
}

func (s *memoryStore) snapshot(user *models.User) *models.User {
	copied := *user
	copied.Cart = append([]models.CartItem{}, user.Cart...)
	return &copied
}

func (s *memoryStore) PushCartItem(ctx context.Context, userID uuid.UUID, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Cart = append(user.Cart, item)
	return nil
}

func (s *memoryStore) PullCartEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return false, apperrors.ErrUserNotFound
	}
	for i, entry := range user.Cart {
		if entry.EntryID == entryID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) ClearCart(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Cart = []models.CartItem{}
	return nil
}

func (s *memoryStore) CreateOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byRef[order.PaymentIntentID]; exists {
		return apperrors.ErrDuplicateOrder
	}
	s.byRef[order.PaymentIntentID] = len(s.orders)
	s.orders = append(s.orders, *order)
	return nil
}

func (s *memoryStore) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, exists := s.byRef[paymentIntentID]
	if !exists {
		return nil, apperrors.ErrOrderNotFound
	}
	order := s.orders[idx]
	return &order, nil
}

func (s *memoryStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// orderRepoAdapter exposes the memory store under the order repository
// method names expected by the order service.
type orderRepoAdapter struct{ store *memoryStore }

func (a orderRepoAdapter) Create(ctx context.Context, order *models.Order) error {
	return a.store.CreateOrder(ctx, order)
}

func (a orderRepoAdapter) FindByPaymentIntentID(ctx context.Context, ref string) (*models.Order, error) {
	return a.store.FindByPaymentIntentID(ctx, ref)
}

func (a orderRepoAdapter) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return a.store.FindByUserID(ctx, userID)
}

type memoryIdemStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemoryIdemStore() *memoryIdemStore {
	return &memoryIdemStore{keys: make(map[string]bool)}
}

func (s *memoryIdemStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys[key] {
		return false, nil
	}
	s.keys[key] = true
	return true, nil
}

func (s *memoryIdemStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}
