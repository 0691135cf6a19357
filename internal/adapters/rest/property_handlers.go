package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type PropertyHandlers struct {
	searchUC  usecases_port.SearchPropertiesUseCase
	detailsUC usecases_port.GetPropertyDetailsUseCase
	createUC  usecases_port.CreatePropertyUseCase
	updateUC  usecases_port.UpdatePropertyUseCase
	deleteUC  usecases_port.DeletePropertyUseCase
}

// NewPropertyHandlers - конструктор для обработчиков объектов недвижимости.
func NewPropertyHandlers(searchUC usecases_port.SearchPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase) *PropertyHandlers {
	return &PropertyHandlers{
		searchUC:  searchUC,
		detailsUC: detailsUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
	}
}

// HandleSearchProperties - обработчик для GET /api/v1/properties
func (h *PropertyHandlers) HandleSearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSearchProperties"})

	minPrice, err := getQueryFloat(r, "minPrice")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'minPrice' must be a number")
		return
	}
	maxPrice, err := getQueryFloat(r, "maxPrice")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'maxPrice' must be a number")
		return
	}

	filters := domain.SearchPropertiesFilters{
		Name:     r.URL.Query().Get("name"),
		Address:  r.URL.Query().Get("address"),
		PriceMin: minPrice,
		PriceMax: maxPrice,
	}
	page := getQueryInt(r, "page", 0)
	size := getQueryInt(r, "size", 0)

	result, err := h.searchUC.Execute(r.Context(), filters, page, size)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	items := make([]PropertyViewResponseDTO, 0, len(result.Items))
	for _, card := range result.Items {
		items = append(items, toPropertyViewResponse(card))
	}

	RespondWithJSON(w, http.StatusOK, PaginatedPropertiesResponseDTO{
		Items: items,
		Total: result.TotalCount,
		Page:  result.Page,
		Size:  result.Size,
	})
}

// HandleGetPropertyByID - обработчик для GET /api/v1/properties/{id}
func (h *PropertyHandlers) HandleGetPropertyByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetPropertyByID"})

	id := chi.URLParam(r, "id")

	card, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get property")
		return
	}
	if card == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyViewResponse(*card))
}

// decodePropertyRequest проверяет тело по контракту запроса
// и добавляет правила, которые нельзя выразить в схеме.
func decodePropertyRequest(requestType string, body []byte) (*CreatePropertyRequestDTO, contracts.FieldViolations, error) {
	violations, err := contracts.ValidateRequest(requestType, body)
	if err != nil {
		return nil, nil, err
	}

	var reqDTO CreatePropertyRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		if violations.Empty() {
			violations.Add("body", "request body is not valid JSON")
		}
		return nil, violations, nil
	}

	// Год постройки не может быть в будущем. Правило проверяется всегда,
	// а не только при чистой схеме: отчет содержит все нарушения сразу.
	if currentYear := time.Now().UTC().Year(); reqDTO.Year > currentYear {
		violations.Add("year", fmt.Sprintf("must not be greater than %d", currentYear))
	}

	if !violations.Empty() {
		return nil, violations, nil
	}
	return &reqDTO, violations, nil
}

// HandleCreateProperty - обработчик для POST /api/v1/properties
func (h *PropertyHandlers) HandleCreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleCreateProperty"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	reqDTO, violations, err := decodePropertyRequest("CreatePropertyRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}
	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	id, err := h.createUC.Execute(r.Context(), domain.PropertyDraft{
		IDOwner:      reqDTO.IDOwner,
		Name:         reqDTO.Name,
		Address:      reqDTO.Address,
		Price:        reqDTO.Price,
		CodeInternal: reqDTO.CodeInternal,
		Year:         reqDTO.Year,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": id})
	RespondWithJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id})
}

// HandleUpdateProperty - обработчик для PUT /api/v1/properties/{id}
func (h *PropertyHandlers) HandleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleUpdateProperty"})

	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	reqDTO, violations, err := decodePropertyRequest("UpdatePropertyRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}
	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	ok, err := h.updateUC.Execute(r.Context(), id, domain.PropertyDraft{
		IDOwner:      reqDTO.IDOwner,
		Name:         reqDTO.Name,
		Address:      reqDTO.Address,
		Price:        reqDTO.Price,
		CodeInternal: reqDTO.CodeInternal,
		Year:         reqDTO.Year,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteProperty - обработчик для DELETE /api/v1/properties/{id}
func (h *PropertyHandlers) HandleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDeleteProperty"})

	id := chi.URLParam(r, "id")

	ok, err := h.deleteUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": id})
	w.WriteHeader(http.StatusNoContent)
}
