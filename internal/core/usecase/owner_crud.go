package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CRUD владельцев — прямое делегирование в репозиторий,
// производных вычислений здесь нет.

type GetOwnerUseCase struct {
	owners port.OwnerRepositoryPort
}

func NewGetOwnerUseCase(owners port.OwnerRepositoryPort) *GetOwnerUseCase {
	return &GetOwnerUseCase{owners: owners}
}

func (uc *GetOwnerUseCase) Execute(ctx context.Context, id string) (*domain.Owner, error) {
	return uc.owners.GetByID(ctx, id)
}

type CreateOwnerUseCase struct {
	owners port.OwnerRepositoryPort
}

func NewCreateOwnerUseCase(owners port.OwnerRepositoryPort) *CreateOwnerUseCase {
	return &CreateOwnerUseCase{owners: owners}
}

func (uc *CreateOwnerUseCase) Execute(ctx context.Context, draft domain.OwnerDraft) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	id, err := uc.owners.Create(ctx, &domain.Owner{
		Name:     draft.Name,
		Address:  draft.Address,
		Photo:    draft.Photo,
		Birthday: draft.Birthday,
	})
	if err != nil {
		logger.Error("Failed to create owner", err, port.Fields{"use_case": "CreateOwner"})
		return "", err
	}
	logger.Info("Owner created", port.Fields{"owner_id": id})
	return id, nil
}

type UpdateOwnerUseCase struct {
	owners port.OwnerRepositoryPort
}

func NewUpdateOwnerUseCase(owners port.OwnerRepositoryPort) *UpdateOwnerUseCase {
	return &UpdateOwnerUseCase{owners: owners}
}

func (uc *UpdateOwnerUseCase) Execute(ctx context.Context, id string, draft domain.OwnerDraft) (bool, error) {
	return uc.owners.Update(ctx, id, &domain.Owner{
		Name:     draft.Name,
		Address:  draft.Address,
		Photo:    draft.Photo,
		Birthday: draft.Birthday,
	})
}

type DeleteOwnerUseCase struct {
	owners port.OwnerRepositoryPort
}

func NewDeleteOwnerUseCase(owners port.OwnerRepositoryPort) *DeleteOwnerUseCase {
	return &DeleteOwnerUseCase{owners: owners}
}

func (uc *DeleteOwnerUseCase) Execute(ctx context.Context, id string) (bool, error) {
	return uc.owners.Delete(ctx, id)
}
