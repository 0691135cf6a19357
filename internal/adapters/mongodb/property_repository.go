package mongodb_adapter

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) (*PropertyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &PropertyRepository{col: db.Collection(CollectionProperties)}, nil
}

// Search выполняет фильтрацию, счет совпадений и выборку страницы.
// Сортировка — по createdAt по убыванию; порядок при равенстве меток
// времени определяется хранилищем.
func (r *PropertyRepository) Search(ctx context.Context, filters domain.SearchPropertiesFilters, page, size int) ([]domain.Property, int64, error) {
	filter := buildSearchFilter(filters)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find properties: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]domain.Property, 0, size)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode properties: %w", err)
	}

	return items, total, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Некорректный id — это "не найдено", а не ошибка
		return nil, nil
	}

	var p domain.Property
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property %s: %w", id, err)
	}
	return &p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (string, error) {
	// Идентификатор назначает хранилище; значение вызывающего затирается
	p.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("failed to insert property: %w", err)
	}
	return p.ID.Hex(), nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, p *domain.Property) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	p.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, p)
	if err != nil {
		return false, fmt.Errorf("failed to replace property %s: %w", id, err)
	}
	return res.MatchedCount == 1, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	return res.DeletedCount == 1, nil
}
