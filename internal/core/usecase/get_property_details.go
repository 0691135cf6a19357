package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	properties port.PropertyRepositoryPort
	images     port.PropertyImageRepositoryPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyRepositoryPort, images port.PropertyImageRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, images: images}
}

// Execute возвращает объект с разрешенной обложкой или (nil, nil),
// если объект не найден.
func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.PropertyCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyDetails", "property_id": id})

	p, err := uc.properties.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if p == nil {
		ucLogger.Debug("Property not found", nil)
		return nil, nil
	}

	cover, err := resolveCover(ctx, uc.images, p.ID.Hex())
	if err != nil {
		ucLogger.Error("Failed to resolve cover image", err, nil)
		return nil, err
	}

	return &domain.PropertyCard{Property: *p, CoverURL: cover}, nil
}
