package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// OwnerRepositoryPort — контракт хранилища владельцев.
type OwnerRepositoryPort interface {
	// GetByID возвращает (nil, nil), если владелец не найден.
	GetByID(ctx context.Context, id string) (*domain.Owner, error)

	// Create назначает владельцу новый id и возвращает его.
	Create(ctx context.Context, o *domain.Owner) (string, error)

	// Update полностью заменяет документ. Возвращает false,
	// если документ не найден.
	Update(ctx context.Context, id string, o *domain.Owner) (bool, error)

	Delete(ctx context.Context, id string) (bool, error)
}
