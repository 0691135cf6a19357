package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// PropertyImageRepositoryPort — контракт хранилища изображений.
type PropertyImageRepositoryPort interface {
	// GetByProperty возвращает изображения объекта в порядке хранения.
	// Некорректный idProperty дает пустой список, а не ошибку.
	GetByProperty(ctx context.Context, idProperty string) ([]domain.PropertyImage, error)

	// Create назначает изображению новый id и возвращает его.
	Create(ctx context.Context, img *domain.PropertyImage) (string, error)

	// SetEnabled переключает флаг обложки. Возвращает false,
	// если документ не найден или значение не изменилось.
	SetEnabled(ctx context.Context, id string, enabled bool) (bool, error)

	Delete(ctx context.Context, id string) (bool, error)
}
