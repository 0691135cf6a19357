package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	// Execute возвращает (nil, nil), если объект не найден.
	Execute(ctx context.Context, id string) (*domain.PropertyCard, error)
}
