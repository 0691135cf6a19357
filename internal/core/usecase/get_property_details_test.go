package usecase

import (
	"context"
	"testing"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetPropertyDetails_NotFoundReturnsNil(t *testing.T) {
	uc := NewGetPropertyDetailsUseCase(newMockPropertyRepository(), newMockImageRepository())

	card, err := uc.Execute(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card != nil {
		t.Errorf("Expected nil card for a missing property, got %+v", card)
	}
}

func TestGetPropertyDetails_ResolvesCover(t *testing.T) {
	propertyID := primitive.NewObjectID()

	repo := newMockPropertyRepository()
	repo.byID[propertyID.Hex()] = &domain.Property{ID: propertyID, Name: "Villa Aurora"}

	images := newMockImageRepository()
	images.byProperty[propertyID.Hex()] = []domain.PropertyImage{
		{File: "cover.jpg", Enabled: true},
	}

	uc := NewGetPropertyDetailsUseCase(repo, images)
	card, err := uc.Execute(context.Background(), propertyID.Hex())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card == nil {
		t.Fatal("Expected a card, got nil")
	}
	if card.Name != "Villa Aurora" {
		t.Errorf("Expected property fields on the card, got name %q", card.Name)
	}
	if card.CoverURL == nil || *card.CoverURL != "cover.jpg" {
		t.Errorf("Expected cover 'cover.jpg', got %v", card.CoverURL)
	}
}
