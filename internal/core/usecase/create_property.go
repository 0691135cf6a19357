package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	events     port.CatalogEventPublisherPort // может быть nil, если шина отключена
}

func NewCreatePropertyUseCase(properties port.PropertyRepositoryPort, events port.CatalogEventPublisherPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties, events: events}
}

// Execute создает объект каталога: проставляет серверные метки времени
// (createdAt == updatedAt в момент создания) и отдает назначение id хранилищу.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, draft domain.PropertyDraft) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty"})

	idOwner, err := primitive.ObjectIDFromHex(draft.IDOwner)
	if err != nil {
		// Валидация запроса проверяет формат раньше, сюда попадать не должны
		return "", fmt.Errorf("invalid owner id %q: %w", draft.IDOwner, err)
	}

	now := time.Now().UTC()
	entity := &domain.Property{
		IDOwner:      idOwner,
		Name:         draft.Name,
		Address:      draft.Address,
		Price:        draft.Price,
		CodeInternal: draft.CodeInternal,
		Year:         draft.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := uc.properties.Create(ctx, entity)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return "", err
	}

	publishPropertyChange(ctx, uc.events, ucLogger, domain.PropertyCreated, id)

	ucLogger.Info("Property created", port.Fields{"property_id": id})
	return id, nil
}

// publishPropertyChange отправляет событие изменения каталога best-effort:
// ошибка публикации логируется и не влияет на результат запроса.
func publishPropertyChange(ctx context.Context, events port.CatalogEventPublisherPort, logger port.LoggerPort, action, propertyID string) {
	if events == nil {
		return
	}
	change := domain.PropertyChange{
		Action:     action,
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
	}
	if err := events.PublishPropertyChanged(ctx, change); err != nil {
		logger.Error("Failed to publish property change event", err, port.Fields{
			"action":      action,
			"property_id": propertyID,
		})
	}
}
