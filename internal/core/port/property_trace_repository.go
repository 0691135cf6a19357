package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// PropertyTraceRepositoryPort — контракт хранилища истории сделок.
type PropertyTraceRepositoryPort interface {
	// GetByProperty возвращает записи истории объекта,
	// отсортированные по дате сделки по убыванию.
	GetByProperty(ctx context.Context, idProperty string) ([]domain.PropertyTrace, error)

	// Create назначает записи новый id и возвращает его.
	Create(ctx context.Context, tr *domain.PropertyTrace) (string, error)

	Delete(ctx context.Context, id string) (bool, error)
}
