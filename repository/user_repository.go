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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique index on email that backs the
// registration conflict check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Wrap(apperrors.ErrEmailTaken, err)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return &user, nil
}

// PushCartItem appends an item to the user's cart with a single atomic
// $push, so concurrent adds never lose updates.
func (r *UserRepository) PushCartItem(ctx context.Context, userID uuid.UUID, item models.CartItem) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"cart": item}},
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// PullCartEntry removes the cart entry with the given entry id. The
// returned bool reports whether an entry was actually removed, which is
// false when a concurrent remove got there first.
func (r *UserRepository) PullCartEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"cart": bson.M{"entry_id": entryID}}},
	)
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if res.MatchedCount == 0 {
		return false, apperrors.ErrUserNotFound
	}
	return res.ModifiedCount > 0, nil
}

// ClearCart resets the user's cart to empty. Clearing an already empty
// cart is a no-op, which keeps checkout retries harmless.
func (r *UserRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"cart": []models.CartItem{}}},
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
