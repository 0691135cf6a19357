package mongodb_adapter

import (
	"context"
	"fmt"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PropertyTraceRepository struct {
	col *mongo.Collection
}

func NewPropertyTraceRepository(db *mongo.Database) (*PropertyTraceRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &PropertyTraceRepository{col: db.Collection(CollectionPropertyTraces)}, nil
}

// GetByProperty возвращает историю сделок, отсортированную
// по дате сделки по убыванию (сначала свежие).
func (r *PropertyTraceRepository) GetByProperty(ctx context.Context, idProperty string) ([]domain.PropertyTrace, error) {
	pid, err := primitive.ObjectIDFromHex(idProperty)
	if err != nil {
		return []domain.PropertyTrace{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "dateSale", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"idProperty": pid}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find traces for property %s: %w", idProperty, err)
	}
	defer cur.Close(ctx)

	traces := make([]domain.PropertyTrace, 0)
	if err := cur.All(ctx, &traces); err != nil {
		return nil, fmt.Errorf("failed to decode property traces: %w", err)
	}
	return traces, nil
}

func (r *PropertyTraceRepository) Create(ctx context.Context, tr *domain.PropertyTrace) (string, error) {
	tr.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, tr); err != nil {
		return "", fmt.Errorf("failed to insert property trace: %w", err)
	}
	return tr.ID.Hex(), nil
}

func (r *PropertyTraceRepository) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": tid})
	if err != nil {
		return false, fmt.Errorf("failed to delete trace %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
