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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyImageHandlers struct {
	listUC       usecases_port.ListPropertyImagesUseCase
	addUC        usecases_port.AddPropertyImageUseCase
	setEnabledUC usecases_port.SetImageEnabledUseCase
	deleteUC     usecases_port.DeletePropertyImageUseCase
}

func NewPropertyImageHandlers(listUC usecases_port.ListPropertyImagesUseCase,
	addUC usecases_port.AddPropertyImageUseCase,
	setEnabledUC usecases_port.SetImageEnabledUseCase,
	deleteUC usecases_port.DeletePropertyImageUseCase) *PropertyImageHandlers {
	return &PropertyImageHandlers{
		listUC:       listUC,
		addUC:        addUC,
		setEnabledUC: setEnabledUC,
		deleteUC:     deleteUC,
	}
}

// HandleListPropertyImages - обработчик для GET /api/v1/properties/{id}/images
func (h *PropertyImageHandlers) HandleListPropertyImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleListPropertyImages"})

	idProperty := chi.URLParam(r, "id")

	images, err := h.listUC.Execute(r.Context(), idProperty)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to list property images")
		return
	}

	response := make([]PropertyImageResponseDTO, 0, len(images))
	for _, image := range images {
		response = append(response, toPropertyImageResponse(image))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// HandleAddPropertyImage - обработчик для POST /api/v1/properties/{id}/images
func (h *PropertyImageHandlers) HandleAddPropertyImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleAddPropertyImage"})

	// принадлежность изображения определяет путь, а не тело запроса
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

	violations, err := contracts.ValidateRequest("CreatePropertyImageRequest", body)
	if err != nil {
		logger.Error("Request contract is not available", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}
	if !violations.Empty() {
		WriteValidationError(w, violations)
		return
	}

	var reqDTO CreatePropertyImageRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		violations.Add("body", "request body is not valid JSON")
		WriteValidationError(w, violations)
		return
	}

	// без явного флага изображение добавляется выключенным
	enabled := false
	if reqDTO.Enabled != nil {
		enabled = *reqDTO.Enabled
	}

	id, err := h.addUC.Execute(r.Context(), domain.PropertyImageDraft{
		IDProperty: idProperty,
		File:       reqDTO.File,
		Enabled:    enabled,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add property image")
		return
	}

	logger.Info("Property image added", port.Fields{"image_id": id, "property_id": idProperty})
	RespondWithJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id})
}

// HandleSetImageEnabled - обработчик для PUT /api/v1/properties/{id}/images/{imageId}/enabled
func (h *PropertyImageHandlers) HandleSetImageEnabled(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSetImageEnabled"})

	imageID := chi.URLParam(r, "imageId")

	var reqDTO SetImageEnabledRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reqDTO.Enabled == nil {
		WriteJSONError(w, http.StatusBadRequest, "Field 'enabled' is required")
		return
	}

	ok, err := h.setEnabledUC.Execute(r.Context(), imageID, *reqDTO.Enabled)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update property image")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property image not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeletePropertyImage - обработчик для DELETE /api/v1/properties/{id}/images/{imageId}
func (h *PropertyImageHandlers) HandleDeletePropertyImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDeletePropertyImage"})

	imageID := chi.URLParam(r, "imageId")

	ok, err := h.deleteUC.Execute(r.Context(), imageID)
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property image")
		return
	}
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property image not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
