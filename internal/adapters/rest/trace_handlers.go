package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// допуск на расхождение часов клиента при проверке даты сделки
const traceDateSaleSkew = 24 * time.Hour

type PropertyTraceHandlers struct {
	listUC   usecases_port.ListPropertyTracesUseCase
	addUC    usecases_port.AddPropertyTraceUseCase
	deleteUC usecases_port.DeletePropertyTraceUseCase
}

func NewPropertyTraceHandlers(listUC usecases_port.ListPropertyTracesUseCase,
	addUC usecases_port.AddPropertyTraceUseCase,
	deleteUC usecases_port.DeletePropertyTraceUseCase) *PropertyTraceHandlers {
	return &PropertyTraceHandlers{
		listUC:   listUC,
		addUC:    addUC,
		deleteUC: deleteUC,
	}
}

// HandleListPropertyTraces - обработчик для GET /api/v1/properties/{id}/traces
func (h *PropertyTraceHandlers) HandleListPropertyTraces(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleListPropertyTraces"})

	idProperty := chi.URLParam(r, "id")

	traces, err := h.listUC.Execute(r.Context(), idProperty)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to list property traces")
		return
	}

	response := make([]PropertyTraceResponseDTO, 0, len(traces))
	for _, trace := range traces {
		response = append(response, toPropertyTraceResponse(trace))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// HandleAddPropertyTrace - обработчик для POST /api/v1/properties/{id}/traces
func (h *PropertyTraceHandlers) HandleAddPropertyTrace(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleAddPropertyTrace"})

	idProperty := chi.URLParam(r, "id")
	if !primitive.IsValidObjectID(idProperty) {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	violations, err := contracts.ValidateRequest("CreatePropertyTraceRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}

	var reqDTO CreatePropertyTraceRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		if violations.Empty() {
			violations.Add("body", "request body is not valid JSON")
		}
		WriteValidationError(w, violations)
		return
	}

	// Дата сделки не может быть в будущем. Правило проверяется всегда,
	// а не только при чистой схеме: отчет содержит все нарушения сразу.
	if reqDTO.DateSale.After(time.Now().UTC().Add(traceDateSaleSkew)) {
		violations.Add("dateSale", "must not be in the future")
	}

	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	id, err := h.addUC.Execute(r.Context(), domain.PropertyTraceDraft{
		IDProperty: idProperty,
		DateSale:   reqDTO.DateSale,
		Name:       reqDTO.Name,
		Value:      reqDTO.Value,
		Tax:        reqDTO.Tax,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add property trace")
		return
	}

	logger.Info("Property trace added", port.Fields{"trace_id": id, "property_id": idProperty})
	RespondWithJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id})
}

// HandleDeletePropertyTrace - обработчик для DELETE /api/v1/properties/{id}/traces/{traceId}
func (h *PropertyTraceHandlers) HandleDeletePropertyTrace(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDeletePropertyTrace"})

	traceID := chi.URLParam(r, "traceId")

	ok, err := h.deleteUC.Execute(r.Context(), traceID)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property trace")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property trace not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
