package repository

import (
	"context"
	"fmt"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	Insert(ctx context.Context, item *entity.MenuItem) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &menuRepository{collection: db.Collection("menu")}
}

// List เรียงชื่อจากมากไปน้อย; _id เป็น tie-break ให้ลำดับนิ่ง
func (r *menuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "name", Value: -1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	items := []entity.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	return items, nil
}

func (r *menuRepository) Insert(ctx context.Context, item *entity.MenuItem) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert menu item: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *menuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
