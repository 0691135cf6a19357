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

type UpdatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	events     port.CatalogEventPublisherPort
}

func NewUpdatePropertyUseCase(properties port.PropertyRepositoryPort, events port.CatalogEventPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{properties: properties, events: events}
}

// Execute сначала убеждается, что объект существует (иначе false без записи),
// затем заменяет изменяемые поля и проставляет updatedAt.
// createdAt сохраняется от существующего документа.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, draft domain.PropertyDraft) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": id})

	existing, err := uc.properties.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return false, err
	}
	if existing == nil {
		ucLogger.Debug("Property not found, nothing to update", nil)
		return false, nil
	}

	idOwner, err := primitive.ObjectIDFromHex(draft.IDOwner)
	if err != nil {
		return false, fmt.Errorf("invalid owner id %q: %w", draft.IDOwner, err)
	}

	existing.IDOwner = idOwner
	existing.Name = draft.Name
	existing.Address = draft.Address
	existing.Price = draft.Price
	existing.CodeInternal = draft.CodeInternal
	existing.Year = draft.Year
	existing.UpdatedAt = time.Now().UTC()

	ok, err := uc.properties.Update(ctx, id, existing)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return false, err
	}

	if ok {
		publishPropertyChange(ctx, uc.events, ucLogger, domain.PropertyUpdated, id)
		ucLogger.Info("Property updated", nil)
	}
	return ok, nil
}
