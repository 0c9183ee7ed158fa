package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartRepo is an in-memory stand-in for the Mongo-backed user
// repository, mimicking its atomic push/pull semantics.
type fakeCartRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeCartRepo(users ...*models.User) *fakeCartRepo {
	r := &fakeCartRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	snapshot := *user
	snapshot.Cart = append([]models.CartItem{}, user.Cart...)
	return &snapshot, nil
}

func (r *fakeCartRepo) PushCartItem(ctx context.Context, userID uuid.UUID, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Cart = append(user.Cart, item)
	return nil
}

func (r *fakeCartRepo) PullCartEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
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

func backpack() models.CartItem {
	return models.CartItem{ProductID: 1, Title: "Fjallraven Backpack", Category: "men's clothing", Price: 109.95, Rate: 3.9}
}

func shirt() models.CartItem {
	return models.CartItem{ProductID: 2, Title: "Mens Casual T-Shirt", Category: "men's clothing", Price: 22.3, Rate: 4.1}
}

func TestAddItem_MultisetSemantics(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "ana@x.com"}
	svc := NewCartService(newFakeCartRepo(user))

	// Adding the same product three times yields three entries.
	for i := 0; i < 3; i++ {
		added, err := svc.AddItem(ctx, user.ID, backpack())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, added.EntryID)
	}

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.NotEqual(t, items[0].EntryID, items[1].EntryID)
	assert.NotEqual(t, items[1].EntryID, items[2].EntryID)
}

func TestAddItem_UserNotFound(t *testing.T) {
	svc := NewCartService(newFakeCartRepo())

	_, err := svc.AddItem(context.Background(), uuid.New(), backpack())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRemoveItem_RemovesFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "ana@x.com"}
	repo := newFakeCartRepo(user)
	svc := NewCartService(repo)

	_, err := svc.AddItem(ctx, user.ID, backpack())
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, user.ID, shirt())
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, user.ID, backpack())
	require.NoError(t, err)

	firstEntry, _ := svc.ListItems(ctx, user.ID)

	require.NoError(t, svc.RemoveItem(ctx, user.ID, 1))

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// The first backpack entry is gone; the shirt and second backpack
	// remain in insertion order.
	assert.Equal(t, firstEntry[1].EntryID, items[0].EntryID)
	assert.Equal(t, firstEntry[2].EntryID, items[1].EntryID)
}

func TestRemoveItem_NotInCart(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "ana@x.com"}
	svc := NewCartService(newFakeCartRepo(user))

	_, err := svc.AddItem(ctx, user.ID, backpack())
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, user.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	// Cart unchanged on a miss.
	items, _ := svc.ListItems(ctx, user.ID)
	assert.Len(t, items, 1)
}

func TestListItems_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "ana@x.com"}
	svc := NewCartService(newFakeCartRepo(user))

	_, err := svc.AddItem(ctx, user.ID, shirt())
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, user.ID, backpack())
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, int64(1), items[1].ProductID)
}

func TestListItems_NilCart(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ana@x.com", Cart: nil}
	svc := NewCartService(newFakeCartRepo(user))

	items, err := svc.ListItems(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
