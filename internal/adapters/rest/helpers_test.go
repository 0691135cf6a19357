package rest

import (
	"context"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// noopTestLogger глушит логи сервера в тестах.
type noopTestLogger struct{}

func (noopTestLogger) Info(string, port.Fields)         {}
func (noopTestLogger) Warn(string, port.Fields)         {}
func (noopTestLogger) Error(string, error, port.Fields) {}
func (noopTestLogger) Debug(string, port.Fields)        {}
func (l noopTestLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

// ============================================
// Моки use case-ов владельцев
// ============================================

type mockGetOwnerUC struct {
	owner *domain.Owner
}

func (m *mockGetOwnerUC) Execute(_ context.Context, id string) (*domain.Owner, error) {
	return m.owner, nil
}

type mockCreateOwnerUC struct {
	id    string
	draft domain.OwnerDraft
}

func (m *mockCreateOwnerUC) Execute(_ context.Context, draft domain.OwnerDraft) (string, error) {
	m.draft = draft
	return m.id, nil
}

type mockUpdateOwnerUC struct {
	ok bool
}

func (m *mockUpdateOwnerUC) Execute(_ context.Context, id string, draft domain.OwnerDraft) (bool, error) {
	return m.ok, nil
}

type mockDeleteOwnerUC struct {
	ok bool
}

func (m *mockDeleteOwnerUC) Execute(_ context.Context, id string) (bool, error) {
	return m.ok, nil
}

// ============================================
// Моки use case-ов изображений
// ============================================

type mockListImagesUC struct {
	images []domain.PropertyImage
}

func (m *mockListImagesUC) Execute(_ context.Context, idProperty string) ([]domain.PropertyImage, error) {
	return m.images, nil
}

type mockAddImageUC struct {
	id    string
	draft domain.PropertyImageDraft
}

func (m *mockAddImageUC) Execute(_ context.Context, draft domain.PropertyImageDraft) (string, error) {
	m.draft = draft
	return m.id, nil
}

type mockSetEnabledUC struct {
	ok      bool
	id      string
	enabled bool
}

func (m *mockSetEnabledUC) Execute(_ context.Context, id string, enabled bool) (bool, error) {
	m.id = id
	m.enabled = enabled
	return m.ok, nil
}

type mockDeleteImageUC struct {
	ok bool
}

func (m *mockDeleteImageUC) Execute(_ context.Context, id string) (bool, error) {
	return m.ok, nil
}

// ============================================
// Моки use case-ов истории сделок
// ============================================

type mockListTracesUC struct {
	traces []domain.PropertyTrace
}

func (m *mockListTracesUC) Execute(_ context.Context, idProperty string) ([]domain.PropertyTrace, error) {
	return m.traces, nil
}

type mockAddTraceUC struct {
	id    string
	draft domain.PropertyTraceDraft
}

func (m *mockAddTraceUC) Execute(_ context.Context, draft domain.PropertyTraceDraft) (string, error) {
	m.draft = draft
	return m.id, nil
}

type mockDeleteTraceUC struct {
	ok bool
}

func (m *mockDeleteTraceUC) Execute(_ context.Context, id string) (bool, error) {
	return m.ok, nil
}
