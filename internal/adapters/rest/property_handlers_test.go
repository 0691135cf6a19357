package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============================================
// Моки use case-ов для тестов обработчиков
// ============================================

type mockSearchUC struct {
	result *domain.PropertySearchResult
	// параметры последнего вызова
	filters domain.SearchPropertiesFilters
	page    int
	size    int
}

func (m *mockSearchUC) Execute(_ context.Context, filters domain.SearchPropertiesFilters, page, size int) (*domain.PropertySearchResult, error) {
	m.filters = filters
	m.page = page
	m.size = size
	return m.result, nil
}

type mockDetailsUC struct {
	card *domain.PropertyCard
}

func (m *mockDetailsUC) Execute(_ context.Context, id string) (*domain.PropertyCard, error) {
	return m.card, nil
}

type mockCreateUC struct {
	id    string
	draft domain.PropertyDraft
}

func (m *mockCreateUC) Execute(_ context.Context, draft domain.PropertyDraft) (string, error) {
	m.draft = draft
	return m.id, nil
}

type mockUpdateUC struct {
	ok bool
}

func (m *mockUpdateUC) Execute(_ context.Context, id string, draft domain.PropertyDraft) (bool, error) {
	return m.ok, nil
}

type mockDeleteUC struct {
	ok bool
}

func (m *mockDeleteUC) Execute(_ context.Context, id string) (bool, error) {
	return m.ok, nil
}

func newTestServer(search *mockSearchUC, details *mockDetailsUC,
	create *mockCreateUC, update *mockUpdateUC, del *mockDeleteUC) http.Handler {

	propertyHandlers := NewPropertyHandlers(search, details, create, update, del)
	ownerHandlers := NewOwnerHandlers(&mockGetOwnerUC{}, &mockCreateOwnerUC{}, &mockUpdateOwnerUC{}, &mockDeleteOwnerUC{})
	imageHandlers := NewPropertyImageHandlers(&mockListImagesUC{}, &mockAddImageUC{}, &mockSetEnabledUC{}, &mockDeleteImageUC{})
	traceHandlers := NewPropertyTraceHandlers(&mockListTracesUC{}, &mockAddTraceUC{}, &mockDeleteTraceUC{})

	server := NewServer("0", "http://localhost:3000",
		propertyHandlers, ownerHandlers, imageHandlers, traceHandlers, noopTestLogger{})
	return server.httpServer.Handler
}

func TestSearchProperties_ResponseShape(t *testing.T) {
	cover := "cover.jpg"
	property := domain.Property{
		ID:      primitive.NewObjectID(),
		IDOwner: primitive.NewObjectID(),
		Name:    "Villa Aurora",
		Price:   250000,
	}

	search := &mockSearchUC{result: &domain.PropertySearchResult{
		Items: []domain.PropertyCard{
			{Property: property, CoverURL: &cover},
			{Property: domain.Property{ID: primitive.NewObjectID()}, CoverURL: nil},
		},
		TotalCount: 17,
		Page:       2,
		Size:       5,
	}}

	handler := newTestServer(search, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?name=villa&minPrice=100&maxPrice=900&page=2&size=5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// фильтры и пагинация доходят до use case как есть
	if search.filters.Name != "villa" || search.page != 2 || search.size != 5 {
		t.Errorf("Use case got filters=%+v page=%d size=%d", search.filters, search.page, search.size)
	}
	if search.filters.PriceMin == nil || *search.filters.PriceMin != 100 {
		t.Errorf("Expected min price 100, got %v", search.filters.PriceMin)
	}

	var resp PaginatedPropertiesResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 17 || resp.Page != 2 || resp.Size != 5 {
		t.Errorf("Expected total=17 page=2 size=5, got %+v", resp)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(resp.Items))
	}
	if resp.Items[0].ImageURL == nil || *resp.Items[0].ImageURL != "cover.jpg" {
		t.Errorf("Expected imageUrl 'cover.jpg', got %v", resp.Items[0].ImageURL)
	}
	if resp.Items[1].ImageURL != nil {
		t.Errorf("Expected null imageUrl, got %v", *resp.Items[1].ImageURL)
	}

	// карточка выдачи не несет служебных меток времени
	var raw struct {
		Items []map[string]interface{} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	for _, key := range []string{"createdAt", "updatedAt"} {
		if _, ok := raw.Items[0][key]; ok {
			t.Errorf("Unexpected field %q in the listing item", key)
		}
	}
}

func TestSearchProperties_SizeParameterIsHonored(t *testing.T) {
	search := &mockSearchUC{result: &domain.PropertySearchResult{Page: 2, Size: 5}}
	handler := newTestServer(search, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?page=2&size=5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if search.page != 2 || search.size != 5 {
		t.Errorf("Use case got page=%d size=%d, want page=2 size=5", search.page, search.size)
	}
}

func TestSearchProperties_RejectsNonNumericPrice(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?minPrice=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{card: nil}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestCreateProperty_Created(t *testing.T) {
	newID := primitive.NewObjectID().Hex()
	create := &mockCreateUC{id: newID}
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, create, &mockUpdateUC{}, &mockDeleteUC{})

	body := `{
		"idOwner": "507f1f77bcf86cd799439011",
		"name": "Villa Aurora",
		"address": "12 Seaside Blvd",
		"price": 250000,
		"codeInternal": "VA-001",
		"year": 2015
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CreatedResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID != newID {
		t.Errorf("Expected id %q, got %q", newID, resp.ID)
	}
	if create.draft.Name != "Villa Aurora" {
		t.Errorf("Use case got draft %+v", create.draft)
	}
}

func TestCreateProperty_ValidationFailureListsAllFields(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	// сразу два нарушения: битый id владельца и цена <= 0
	body := `{
		"idOwner": "nope",
		"name": "Villa Aurora",
		"address": "12 Seaside Blvd",
		"price": 0,
		"year": 2015
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Fields["idOwner"]) == 0 || len(resp.Fields["price"]) == 0 {
		t.Errorf("Expected violations on idOwner and price, got %v", resp.Fields)
	}
}

func TestCreateProperty_RejectsFutureYear(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	body := `{
		"idOwner": "507f1f77bcf86cd799439011",
		"name": "Villa Aurora",
		"address": "12 Seaside Blvd",
		"price": 250000,
		"year": 2999
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp struct {
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Fields["year"]) == 0 {
		t.Errorf("Expected a violation on 'year', got %v", resp.Fields)
	}
}

func TestCreateProperty_SchemaAndYearViolationsReportedTogether(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})

	// нарушение схемы (пустое имя) и динамического правила (год в будущем)
	// должны попасть в один отчет
	body := `{
		"idOwner": "507f1f77bcf86cd799439011",
		"name": "",
		"address": "12 Seaside Blvd",
		"price": 250000,
		"year": 3000
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Fields["name"]) == 0 {
		t.Errorf("Expected a violation on 'name', got %v", resp.Fields)
	}
	if len(resp.Fields["year"]) == 0 {
		t.Errorf("Expected a violation on 'year', got %v", resp.Fields)
	}
}

func TestUpdateProperty_StatusCodes(t *testing.T) {
	body := `{
		"idOwner": "507f1f77bcf86cd799439011",
		"name": "Villa Aurora",
		"address": "12 Seaside Blvd",
		"price": 250000,
		"year": 2015
	}`

	tests := []struct {
		name string
		ok   bool
		want int
	}{
		{name: "existing property", ok: true, want: http.StatusNoContent},
		{name: "missing property", ok: false, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{ok: tt.ok}, &mockDeleteUC{})

			req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDeleteProperty_NotFound(t *testing.T) {
	handler := newTestServer(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{ok: false})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/properties/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
