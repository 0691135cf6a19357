package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type ListPropertyTracesUseCase interface {
	Execute(ctx context.Context, idProperty string) ([]domain.PropertyTrace, error)
}

type AddPropertyTraceUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyTraceDraft) (string, error)
}

type DeletePropertyTraceUseCase interface {
	Execute(ctx context.Context, id string) (bool, error)
}
