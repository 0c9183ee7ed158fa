package repository

import (
	"context"
	"errors"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// EnsureIndexes creates the unique index on payment_intent_id that makes
// order creation idempotent per payment, plus the user_id lookup index.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "payment_intent_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	})
	return err
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Wrap(apperrors.ErrDuplicateOrder, err)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return nil
}

func (r *OrderRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"payment_intent_id": paymentIntentID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return &order, nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return orders, nil
}
