package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyDraft) (string, error)
}

type UpdatePropertyUseCase interface {
	// Execute возвращает false, если объект не найден.
	Execute(ctx context.Context, id string, draft domain.PropertyDraft) (bool, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id string) (bool, error)
}
