package mongodb_adapter

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes создает индексы по полям поиска и внешним ссылкам.
// Вызывается один раз при старте приложения, до начала обслуживания запросов.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionProperties).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "address", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "idOwner", Value: 1}}},
		{Keys: bson.D{{Key: "codeInternal", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}

	_, err = db.Collection(CollectionOwners).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create owner indexes: %w", err)
	}

	_, err = db.Collection(CollectionPropertyImages).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "idProperty", Value: 1}}},
		{Keys: bson.D{{Key: "enabled", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create image indexes: %w", err)
	}

	_, err = db.Collection(CollectionPropertyTraces).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "idProperty", Value: 1}}},
		{Keys: bson.D{{Key: "dateSale", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create trace indexes: %w", err)
	}

	return nil
}
