package rest

import (
	"time"

	"catalog-service/internal/core/domain"
)

// --- Запросы ---

type CreatePropertyRequestDTO struct {
	IDOwner      string  `json:"idOwner"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
}

type CreateOwnerRequestDTO struct {
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Photo    *string    `json:"photo"`
	Birthday *time.Time `json:"birthday"`
}

type CreatePropertyImageRequestDTO struct {
	File string `json:"file"`
	// Enabled - указатель, чтобы отличить отсутствие поля от false.
	// По умолчанию изображение выключено.
	Enabled *bool `json:"enabled"`
}

type SetImageEnabledRequestDTO struct {
	Enabled *bool `json:"enabled"`
}

type CreatePropertyTraceRequestDTO struct {
	DateSale time.Time `json:"dateSale"`
	Name     string    `json:"name"`
	Value    float64   `json:"value"`
	Tax      float64   `json:"tax"`
}

// --- Ответы ---

// PropertyViewResponseDTO — карточка объекта в выдаче поиска и деталях.
// ImageURL == nil сериализуется как null: у объекта нет изображений.
type PropertyViewResponseDTO struct {
	ID           string  `json:"id"`
	IDOwner      string  `json:"idOwner"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
	ImageURL     *string `json:"imageUrl"`
}

type PaginatedPropertiesResponseDTO struct {
	Items []PropertyViewResponseDTO `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Size  int                       `json:"size"`
}

type CreatedResponseDTO struct {
	ID string `json:"id"`
}

type OwnerResponseDTO struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Photo    *string    `json:"photo,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type PropertyImageResponseDTO struct {
	ID         string `json:"id"`
	IDProperty string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

type PropertyTraceResponseDTO struct {
	ID         string    `json:"id"`
	IDProperty string    `json:"idProperty"`
	DateSale   time.Time `json:"dateSale"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Tax        float64   `json:"tax"`
}

// --- Мапперы domain -> DTO ---

func toPropertyViewResponse(card domain.PropertyCard) PropertyViewResponseDTO {
	return PropertyViewResponseDTO{
		ID:           card.ID.Hex(),
		IDOwner:      card.IDOwner.Hex(),
		Name:         card.Name,
		Address:      card.Address,
		Price:        card.Price,
		CodeInternal: card.CodeInternal,
		Year:         card.Year,
		ImageURL:     card.CoverURL,
	}
}

func toOwnerResponse(owner domain.Owner) OwnerResponseDTO {
	return OwnerResponseDTO{
		ID:       owner.ID.Hex(),
		Name:     owner.Name,
		Address:  owner.Address,
		Photo:    owner.Photo,
		Birthday: owner.Birthday,
	}
}

func toPropertyImageResponse(image domain.PropertyImage) PropertyImageResponseDTO {
	return PropertyImageResponseDTO{
		ID:         image.ID.Hex(),
		IDProperty: image.IDProperty.Hex(),
		File:       image.File,
		Enabled:    image.Enabled,
	}
}

func toPropertyTraceResponse(trace domain.PropertyTrace) PropertyTraceResponseDTO {
	return PropertyTraceResponseDTO{
		ID:         trace.ID.Hex(),
		IDProperty: trace.IDProperty.Hex(),
		DateSale:   trace.DateSale,
		Name:       trace.Name,
		Value:      trace.Value,
		Tax:        trace.Tax,
	}
}
