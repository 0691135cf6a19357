package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type ListPropertyImagesUseCase interface {
	Execute(ctx context.Context, idProperty string) ([]domain.PropertyImage, error)
}

type AddPropertyImageUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyImageDraft) (string, error)
}

type SetImageEnabledUseCase interface {
	Execute(ctx context.Context, id string, enabled bool) (bool, error)
}

type DeletePropertyImageUseCase interface {
	Execute(ctx context.Context, id string) (bool, error)
}
