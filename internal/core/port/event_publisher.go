package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// CatalogEventPublisherPort — контракт для публикации событий изменения
// каталога во внешнюю шину. Публикация best-effort: ошибка публикации
// логируется вызывающим и не откатывает уже выполненную запись.
type CatalogEventPublisherPort interface {
	PublishPropertyChanged(ctx context.Context, change domain.PropertyChange) error
}
