package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// PropertyRepositoryPort — контракт хранилища объектов каталога.
type PropertyRepositoryPort interface {
	// Search возвращает страницу объектов и общее число совпадений.
	// page — c единицы; skip = (page-1)*size. Сортировка — по createdAt
	// по убыванию (сначала новые).
	Search(ctx context.Context, filters domain.SearchPropertiesFilters, page, size int) ([]domain.Property, int64, error)

	// GetByID возвращает (nil, nil), если объект не найден.
	// Некорректный id трактуется как "не найдено", а не как ошибка.
	GetByID(ctx context.Context, id string) (*domain.Property, error)

	// Create назначает объекту новый id (значение вызывающего игнорируется)
	// и возвращает его.
	Create(ctx context.Context, p *domain.Property) (string, error)

	// Update полностью заменяет документ. Возвращает false,
	// если документ не найден (в том числе при некорректном id).
	Update(ctx context.Context, id string, p *domain.Property) (bool, error)

	// Delete возвращает false, если id некорректен или документ не найден.
	Delete(ctx context.Context, id string) (bool, error)
}
