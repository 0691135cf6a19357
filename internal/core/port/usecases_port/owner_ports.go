package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetOwnerUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Owner, error)
}

type CreateOwnerUseCase interface {
	Execute(ctx context.Context, draft domain.OwnerDraft) (string, error)
}

type UpdateOwnerUseCase interface {
	Execute(ctx context.Context, id string, draft domain.OwnerDraft) (bool, error)
}

type DeleteOwnerUseCase interface {
	Execute(ctx context.Context, id string) (bool, error)
}
