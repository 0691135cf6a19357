package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Операции с историей сделок. Сортировку по дате сделки (по убыванию)
// обеспечивает репозиторий.

type ListPropertyTracesUseCase struct {
	traces port.PropertyTraceRepositoryPort
}

func NewListPropertyTracesUseCase(traces port.PropertyTraceRepositoryPort) *ListPropertyTracesUseCase {
	return &ListPropertyTracesUseCase{traces: traces}
}

func (uc *ListPropertyTracesUseCase) Execute(ctx context.Context, idProperty string) ([]domain.PropertyTrace, error) {
	return uc.traces.GetByProperty(ctx, idProperty)
}

type AddPropertyTraceUseCase struct {
	traces port.PropertyTraceRepositoryPort
}

func NewAddPropertyTraceUseCase(traces port.PropertyTraceRepositoryPort) *AddPropertyTraceUseCase {
	return &AddPropertyTraceUseCase{traces: traces}
}

func (uc *AddPropertyTraceUseCase) Execute(ctx context.Context, draft domain.PropertyTraceDraft) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	idProperty, err := primitive.ObjectIDFromHex(draft.IDProperty)
	if err != nil {
		return "", fmt.Errorf("invalid property id %q: %w", draft.IDProperty, err)
	}

	id, err := uc.traces.Create(ctx, &domain.PropertyTrace{
		IDProperty: idProperty,
		DateSale:   draft.DateSale,
		Name:       draft.Name,
		Value:      draft.Value,
		Tax:        draft.Tax,
	})
	if err != nil {
		logger.Error("Failed to create property trace", err, port.Fields{"property_id": draft.IDProperty})
		return "", err
	}
	logger.Info("Property trace created", port.Fields{"trace_id": id, "property_id": draft.IDProperty})
	return id, nil
}

type DeletePropertyTraceUseCase struct {
	traces port.PropertyTraceRepositoryPort
}

func NewDeletePropertyTraceUseCase(traces port.PropertyTraceRepositoryPort) *DeletePropertyTraceUseCase {
	return &DeletePropertyTraceUseCase{traces: traces}
}

func (uc *DeletePropertyTraceUseCase) Execute(ctx context.Context, id string) (bool, error) {
	return uc.traces.Delete(ctx, id)
}
