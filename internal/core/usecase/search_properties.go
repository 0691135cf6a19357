package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// Границы нормализации пагинации.
const (
	defaultPage = 1
	defaultSize = 20
	maxPageSize = 50
)

type SearchPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
	images     port.PropertyImageRepositoryPort
}

func NewSearchPropertiesUseCase(properties port.PropertyRepositoryPort, images port.PropertyImageRepositoryPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{properties: properties, images: images}
}

// Execute нормализует параметры запроса, выполняет поиск и разрешает
// обложку для каждого элемента страницы (N+1 ограничен размером страницы).
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchPropertiesFilters, page, size int) (*domain.PropertySearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"page":     page,
		"size":     size,
	})

	// Нормализация пагинации: page >= 1, size в [1, 50], иначе значения по умолчанию
	if page < 1 {
		page = defaultPage
	}
	if size < 1 || size > maxPageSize {
		size = defaultSize
	}

	// Если границы цены перепутаны местами, молча меняем их — это
	// зафиксированное поведение, а не ошибка клиента.
	if filters.PriceMin != nil && filters.PriceMax != nil && *filters.PriceMin > *filters.PriceMax {
		filters.PriceMin, filters.PriceMax = filters.PriceMax, filters.PriceMin
	}

	items, total, err := uc.properties.Search(ctx, filters, page, size)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	cards := make([]domain.PropertyCard, 0, len(items))
	for _, p := range items {
		cover, err := resolveCover(ctx, uc.images, p.ID.Hex())
		if err != nil {
			ucLogger.Error("Failed to resolve cover image", err, port.Fields{"property_id": p.ID.Hex()})
			return nil, err
		}
		cards = append(cards, domain.PropertyCard{Property: p, CoverURL: cover})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   total,
		"items_on_page": len(cards),
	})

	return &domain.PropertySearchResult{
		Items:      cards,
		TotalCount: total,
		Page:       page,
		Size:       size,
	}, nil
}
