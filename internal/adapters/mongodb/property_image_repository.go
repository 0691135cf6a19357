package mongodb_adapter

import (
	"context"
	"fmt"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PropertyImageRepository struct {
	col *mongo.Collection
}

func NewPropertyImageRepository(db *mongo.Database) (*PropertyImageRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &PropertyImageRepository{col: db.Collection(CollectionPropertyImages)}, nil
}

// GetByProperty возвращает изображения в порядке хранения:
// на этот порядок опирается выбор обложки.
func (r *PropertyImageRepository) GetByProperty(ctx context.Context, idProperty string) ([]domain.PropertyImage, error) {
	pid, err := primitive.ObjectIDFromHex(idProperty)
	if err != nil {
		return []domain.PropertyImage{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"idProperty": pid})
	if err != nil {
		return nil, fmt.Errorf("failed to find images for property %s: %w", idProperty, err)
	}
	defer cur.Close(ctx)

	imgs := make([]domain.PropertyImage, 0)
	if err := cur.All(ctx, &imgs); err != nil {
		return nil, fmt.Errorf("failed to decode property images: %w", err)
	}
	return imgs, nil
}

func (r *PropertyImageRepository) Create(ctx context.Context, img *domain.PropertyImage) (string, error) {
	img.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, img); err != nil {
		return "", fmt.Errorf("failed to insert property image: %w", err)
	}
	return img.ID.Hex(), nil
}

func (r *PropertyImageRepository) SetEnabled(ctx context.Context, id string, enabled bool) (bool, error) {
	iid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	upd := bson.M{"$set": bson.M{"enabled": enabled}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": iid}, upd)
	if err != nil {
		return false, fmt.Errorf("failed to toggle image %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *PropertyImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	iid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": iid})
	if err != nil {
		return false, fmt.Errorf("failed to delete image %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
