package mongodb_adapter

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OwnerRepository struct {
	col *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) (*OwnerRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &OwnerRepository{col: db.Collection(CollectionOwners)}, nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var o domain.Owner
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner %s: %w", id, err)
	}
	return &o, nil
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) (string, error) {
	o.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return "", fmt.Errorf("failed to insert owner: %w", err)
	}
	return o.ID.Hex(), nil
}

func (r *OwnerRepository) Update(ctx context.Context, id string, o *domain.Owner) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	o.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, o)
	if err != nil {
		return false, fmt.Errorf("failed to replace owner %s: %w", id, err)
	}
	return res.MatchedCount == 1, nil
}

func (r *OwnerRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete owner %s: %w", id, err)
	}
	return res.DeletedCount == 1, nil
}
