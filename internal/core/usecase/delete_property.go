package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	events     port.CatalogEventPublisherPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort, events port.CatalogEventPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties, events: events}
}

// Execute удаляет объект по id. Изображения и история сделок при этом
// НЕ удаляются — каскада нет, это осознанный пробел.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})

	ok, err := uc.properties.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return false, err
	}

	if ok {
		publishPropertyChange(ctx, uc.events, ucLogger, domain.PropertyDeleted, id)
		ucLogger.Info("Property deleted", nil)
	}
	return ok, nil
}
