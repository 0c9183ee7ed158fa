package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type IUserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type IIdempotencyStore interface {
	Reserve(ctx context.Context, paymentIntentID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, paymentIntentID string) error
}

type IEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

// reservationTTL bounds how long a checkout reservation is held in
// Redis. The unique index on orders.payment_intent_id remains the
// durable guard after expiry.
const reservationTTL = 24 * time.Hour

type OrderService struct {
	orderRepo IOrderRepository
	userStore IUserStore
	idemStore IIdempotencyStore
	publisher IEventPublisher
}

func NewOrderService(or IOrderRepository, us IUserStore, is IIdempotencyStore, pub IEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: or,
		userStore: us,
		idemStore: is,
		publisher: pub,
	}
}

// FinalizeOrder snapshots the user's cart into an immutable order and
// clears the cart. At most one order is ever created per payment intent
// id: a Redis reservation short-circuits concurrent finalizes and the
// unique index rejects duplicates that slip past it. Repeating a
// finalize for an already recorded payment returns the existing order
// id instead of creating a second order.
//
// Order creation and cart clearing are two writes against different
// documents, not a transaction. If the clear fails the order id is
// still returned together with ErrCartNotCleared so the state is
// observable and reconcilable, never silent.
func (s *OrderService) FinalizeOrder(ctx context.Context, userID uuid.UUID, paymentIntentID, status string, createdAt time.Time) (uuid.UUID, error) {
	if paymentIntentID == "" {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrInvalidInput, errors.New("payment intent id is required"))
	}

	if s.idemStore != nil {
		reserved, err := s.idemStore.Reserve(ctx, paymentIntentID, reservationTTL)
		if err != nil {
			// Redis being down must not block checkout; the unique
			// index still prevents duplicates.
			zap.L().Warn("Idempotency reservation unavailable",
				zap.String("payment_intent_id", paymentIntentID), zap.Error(err))
		} else if !reserved {
			return s.resolveExisting(ctx, paymentIntentID)
		}
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		s.release(ctx, paymentIntentID)
		return uuid.Nil, err
	}

	if len(user.Cart) == 0 {
		s.release(ctx, paymentIntentID)
		return uuid.Nil, apperrors.ErrEmptyCart
	}

	if status == "" {
		status = models.OrderStatusPending
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	items := make([]models.CartItem, len(user.Cart))
	copy(items, user.Cart)

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		Items:           items,
		TotalAmount:     cartTotal(items),
		PaymentIntentID: paymentIntentID,
		Created:         createdAt,
		Status:          status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateOrder) {
			return s.resolveExisting(ctx, paymentIntentID)
		}
		s.release(ctx, paymentIntentID)
		return uuid.Nil, err
	}

	if err := s.userStore.ClearCart(ctx, userID); err != nil {
		zap.L().Error("Cart clear failed after order creation",
			zap.String("order_id", order.ID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return order.ID, apperrors.Wrap(apperrors.ErrCartNotCleared, err)
	}

	s.publishOrderCreated(ctx, order)

	return order.ID, nil
}

// ListOrders returns every order belonging to the user, in the store's
// insertion order.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

// resolveExisting maps a duplicate finalize onto the order it already
// produced. An in-flight reservation with no order yet is a conflict.
func (s *OrderService) resolveExisting(ctx context.Context, paymentIntentID string) (uuid.UUID, error) {
	existing, err := s.orderRepo.FindByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrderNotFound) {
			return uuid.Nil, apperrors.ErrDuplicateOrder
		}
		return uuid.Nil, err
	}
	return existing.ID, nil
}

func (s *OrderService) release(ctx context.Context, paymentIntentID string) {
	if s.idemStore == nil {
		return
	}
	if err := s.idemStore.Release(ctx, paymentIntentID); err != nil {
		zap.L().Warn("Failed to release checkout reservation",
			zap.String("payment_intent_id", paymentIntentID), zap.Error(err))
	}
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := models.OrderCreatedEvent{
		Event:           "order.created",
		OrderID:         order.ID,
		UserID:          order.UserID,
		TotalAmount:     order.TotalAmount,
		PaymentIntentID: order.PaymentIntentID,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		// Best-effort only; the order is already durable.
		zap.L().Warn("Failed to publish order.created event",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

// cartTotal recomputes the order total server-side from the snapshot,
// in the smallest currency unit. Client-supplied amounts are not
// trusted into order history.
func cartTotal(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += int64(math.Round(item.Price * 100))
	}
	return total
}
