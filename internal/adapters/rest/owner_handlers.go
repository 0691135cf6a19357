package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type OwnerHandlers struct {
	getUC    usecases_port.GetOwnerUseCase
	createUC usecases_port.CreateOwnerUseCase
	updateUC usecases_port.UpdateOwnerUseCase
	deleteUC usecases_port.DeleteOwnerUseCase
}

func NewOwnerHandlers(getUC usecases_port.GetOwnerUseCase,
	createUC usecases_port.CreateOwnerUseCase,
	updateUC usecases_port.UpdateOwnerUseCase,
	deleteUC usecases_port.DeleteOwnerUseCase) *OwnerHandlers {
	return &OwnerHandlers{
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

func decodeOwnerRequest(requestType string, body []byte) (*CreateOwnerRequestDTO, contracts.FieldViolations, error) {
	violations, err := contracts.ValidateRequest(requestType, body)
	if err != nil {
		return nil, nil, err
	}
	if !violations.Empty() {
		return nil, violations, nil
	}

	var reqDTO CreateOwnerRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		violations.Add("body", "request body is not valid JSON")
		return nil, violations, nil
	}
	return &reqDTO, violations, nil
}

// HandleGetOwnerByID - обработчик для GET /api/v1/owners/{id}
func (h *OwnerHandlers) HandleGetOwnerByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetOwnerByID"})

	id := chi.URLParam(r, "id")

	owner, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get owner")
		return
	}
	if owner == nil {
		WriteJSONError(w, http.StatusNotFound, "Owner not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toOwnerResponse(*owner))
}

// HandleCreateOwner - обработчик для POST /api/v1/owners
func (h *OwnerHandlers) HandleCreateOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleCreateOwner"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	reqDTO, violations, err := decodeOwnerRequest("CreateOwnerRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}
	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	id, err := h.createUC.Execute(r.Context(), domain.OwnerDraft{
		Name:     reqDTO.Name,
		Address:  reqDTO.Address,
		Photo:    reqDTO.Photo,
		Birthday: reqDTO.Birthday,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create owner")
		return
	}

	logger.Info("Owner created", port.Fields{"owner_id": id})
	RespondWithJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id})
}

// HandleUpdateOwner - обработчик для PUT /api/v1/owners/{id}
func (h *OwnerHandlers) HandleUpdateOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleUpdateOwner"})

	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	reqDTO, violations, err := decodeOwnerRequest("UpdateOwnerRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}
	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	ok, err := h.updateUC.Execute(r.Context(), id, domain.OwnerDraft{
		Name:     reqDTO.Name,
		Address:  reqDTO.Address,
		Photo:    reqDTO.Photo,
		Birthday: reqDTO.Birthday,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update owner")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Owner not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteOwner - обработчик для DELETE /api/v1/owners/{id}
func (h *OwnerHandlers) HandleDeleteOwner(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDeleteOwner"})

	id := chi.URLParam(r, "id")

	ok, err := h.deleteUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete owner")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Owner not found")
		return
	}

	logger.Info("Owner deleted", port.Fields{"owner_id": id})
	w.WriteHeader(http.StatusNoContent)
}
