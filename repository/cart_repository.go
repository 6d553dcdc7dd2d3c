package repository

import (
	"context"
	"fmt"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error)
	Insert(ctx context.Context, item *entity.CartItem) (primitive.ObjectID, error)
	// DeleteOwned ลบเฉพาะรายการของ email นั้น; id คนอื่นได้ deletedCount 0
	DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
	DeleteManyOwned(ctx context.Context, ids []primitive.ObjectID, email string) (int64, error)
}

type cartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{collection: db.Collection("carts")}
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error) {
	cur, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	items := []entity.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

func (r *cartRepository) Insert(ctx context.Context, item *entity.CartItem) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert cart item: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *cartRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *cartRepository) DeleteManyOwned(ctx context.Context, ids []primitive.ObjectID, email string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{
		"_id":   bson.M{"$in": ids},
		"email": email,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge cart items: %w", err)
	}
	return res.DeletedCount, nil
}
