package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Операции с изображениями объекта. Существование самого объекта
// здесь не проверяется — это принятый пробел.

type ListPropertyImagesUseCase struct {
	images port.PropertyImageRepositoryPort
}

func NewListPropertyImagesUseCase(images port.PropertyImageRepositoryPort) *ListPropertyImagesUseCase {
	return &ListPropertyImagesUseCase{images: images}
}

func (uc *ListPropertyImagesUseCase) Execute(ctx context.Context, idProperty string) ([]domain.PropertyImage, error) {
	return uc.images.GetByProperty(ctx, idProperty)
}

type AddPropertyImageUseCase struct {
	images port.PropertyImageRepositoryPort
}

func NewAddPropertyImageUseCase(images port.PropertyImageRepositoryPort) *AddPropertyImageUseCase {
	return &AddPropertyImageUseCase{images: images}
}

func (uc *AddPropertyImageUseCase) Execute(ctx context.Context, draft domain.PropertyImageDraft) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	idProperty, err := primitive.ObjectIDFromHex(draft.IDProperty)
	if err != nil {
		return "", fmt.Errorf("invalid property id %q: %w", draft.IDProperty, err)
	}

	id, err := uc.images.Create(ctx, &domain.PropertyImage{
		IDProperty: idProperty,
		File:       draft.File,
		Enabled:    draft.Enabled,
	})
	if err != nil {
		logger.Error("Failed to create property image", err, port.Fields{"property_id": draft.IDProperty})
		return "", err
	}
	logger.Info("Property image created", port.Fields{"image_id": id, "property_id": draft.IDProperty})
	return id, nil
}

type SetImageEnabledUseCase struct {
	images port.PropertyImageRepositoryPort
}

func NewSetImageEnabledUseCase(images port.PropertyImageRepositoryPort) *SetImageEnabledUseCase {
	return &SetImageEnabledUseCase{images: images}
}

func (uc *SetImageEnabledUseCase) Execute(ctx context.Context, id string, enabled bool) (bool, error) {
	return uc.images.SetEnabled(ctx, id, enabled)
}

type DeletePropertyImageUseCase struct {
	images port.PropertyImageRepositoryPort
}

func NewDeletePropertyImageUseCase(images port.PropertyImageRepositoryPort) *DeletePropertyImageUseCase {
	return &DeletePropertyImageUseCase{images: images}
}

func (uc *DeletePropertyImageUseCase) Execute(ctx context.Context, id string) (bool, error) {
	return uc.images.Delete(ctx, id)
}
