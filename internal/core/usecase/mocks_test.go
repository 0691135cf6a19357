package usecase

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ============================================
// Моки портов хранилища для тестов
// ============================================

type mockPropertyRepository struct {
	searchItems []domain.Property
	searchTotal int64
	searchErr   error
	// параметры последнего вызова Search
	lastFilters domain.SearchPropertiesFilters
	lastPage    int
	lastSize    int

	byID map[string]*domain.Property

	createdID    string
	created      *domain.Property
	createErr    error
	updateOK     bool
	updated      *domain.Property
	updateCalled bool
	deleteOK     bool
	deletedID    string
}

func newMockPropertyRepository() *mockPropertyRepository {
	return &mockPropertyRepository{byID: make(map[string]*domain.Property)}
}

func (m *mockPropertyRepository) Search(_ context.Context, filters domain.SearchPropertiesFilters, page, size int) ([]domain.Property, int64, error) {
	m.lastFilters = filters
	m.lastPage = page
	m.lastSize = size
	if m.searchErr != nil {
		return nil, 0, m.searchErr
	}
	return m.searchItems, m.searchTotal, nil
}

func (m *mockPropertyRepository) GetByID(_ context.Context, id string) (*domain.Property, error) {
	return m.byID[id], nil
}

func (m *mockPropertyRepository) Create(_ context.Context, p *domain.Property) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created = p
	return m.createdID, nil
}

func (m *mockPropertyRepository) Update(_ context.Context, id string, p *domain.Property) (bool, error) {
	m.updateCalled = true
	m.updated = p
	return m.updateOK, nil
}

func (m *mockPropertyRepository) Delete(_ context.Context, id string) (bool, error) {
	m.deletedID = id
	return m.deleteOK, nil
}

type mockImageRepository struct {
	byProperty map[string][]domain.PropertyImage
	getErr     error
}

func newMockImageRepository() *mockImageRepository {
	return &mockImageRepository{byProperty: make(map[string][]domain.PropertyImage)}
}

func (m *mockImageRepository) GetByProperty(_ context.Context, idProperty string) ([]domain.PropertyImage, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byProperty[idProperty], nil
}

func (m *mockImageRepository) Create(_ context.Context, img *domain.PropertyImage) (string, error) {
	return img.ID.Hex(), nil
}

func (m *mockImageRepository) SetEnabled(_ context.Context, id string, enabled bool) (bool, error) {
	return false, nil
}

func (m *mockImageRepository) Delete(_ context.Context, id string) (bool, error) {
	return false, nil
}

type mockEventPublisher struct {
	published []domain.PropertyChange
	err       error
}

func (m *mockEventPublisher) PublishPropertyChanged(_ context.Context, change domain.PropertyChange) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, change)
	return nil
}
