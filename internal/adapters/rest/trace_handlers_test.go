package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTraceTestServer(list *mockListTracesUC, add *mockAddTraceUC, del *mockDeleteTraceUC) http.Handler {
	propertyHandlers := NewPropertyHandlers(&mockSearchUC{}, &mockDetailsUC{}, &mockCreateUC{}, &mockUpdateUC{}, &mockDeleteUC{})
	ownerHandlers := NewOwnerHandlers(&mockGetOwnerUC{}, &mockCreateOwnerUC{}, &mockUpdateOwnerUC{}, &mockDeleteOwnerUC{})
	imageHandlers := NewPropertyImageHandlers(&mockListImagesUC{}, &mockAddImageUC{}, &mockSetEnabledUC{}, &mockDeleteImageUC{})
	traceHandlers := NewPropertyTraceHandlers(list, add, del)

	server := NewServer("0", "http://localhost:3000",
		propertyHandlers, ownerHandlers, imageHandlers, traceHandlers, noopTestLogger{})
	return server.httpServer.Handler
}

func TestListPropertyTraces_ReturnsHistory(t *testing.T) {
	propertyID := primitive.NewObjectID()
	list := &mockListTracesUC{traces: []domain.PropertyTrace{
		{
			ID:         primitive.NewObjectID(),
			IDProperty: propertyID,
			DateSale:   time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			Name:       "Second sale",
			Value:      300000,
			Tax:        9000,
		},
		{
			ID:         primitive.NewObjectID(),
			IDProperty: propertyID,
			DateSale:   time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC),
			Name:       "First sale",
			Value:      250000,
			Tax:        7500,
		},
	}}
	handler := newTraceTestServer(list, &mockAddTraceUC{}, &mockDeleteTraceUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+propertyID.Hex()+"/traces", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []PropertyTraceResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("Expected 2 traces, got %d", len(resp))
	}
	if resp[0].Name != "Second sale" || resp[0].Value != 300000 {
		t.Errorf("Unexpected first trace: %+v", resp[0])
	}
}

func TestAddPropertyTrace_Created(t *testing.T) {
	propertyID := primitive.NewObjectID().Hex()
	add := &mockAddTraceUC{id: primitive.NewObjectID().Hex()}
	handler := newTraceTestServer(&mockListTracesUC{}, add, &mockDeleteTraceUC{})

	body := `{
		"dateSale": "2023-03-10T00:00:00Z",
		"name": "Second sale",
		"value": 300000,
		"tax": 9000
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+propertyID+"/traces", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if add.draft.IDProperty != propertyID {
		t.Errorf("Expected property id from path %q, got %q", propertyID, add.draft.IDProperty)
	}
	if add.draft.Name != "Second sale" || add.draft.Tax != 9000 {
		t.Errorf("Use case got draft %+v", add.draft)
	}
}

func TestAddPropertyTrace_RejectsFutureDateSale(t *testing.T) {
	handler := newTraceTestServer(&mockListTracesUC{}, &mockAddTraceUC{}, &mockDeleteTraceUC{})

	future := time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339)
	body := fmt.Sprintf(`{
		"dateSale": %q,
		"name": "Second sale",
		"value": 300000,
		"tax": 9000
	}`, future)
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/properties/"+primitive.NewObjectID().Hex()+"/traces", strings.NewReader(body))
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
	if len(resp.Fields["dateSale"]) == 0 {
		t.Errorf("Expected a violation on 'dateSale', got %v", resp.Fields)
	}
}

func TestAddPropertyTrace_SchemaAndDateViolationsReportedTogether(t *testing.T) {
	handler := newTraceTestServer(&mockListTracesUC{}, &mockAddTraceUC{}, &mockDeleteTraceUC{})

	// нарушение схемы (отрицательная стоимость) и динамического правила
	// (дата в будущем) должны попасть в один отчет
	future := time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339)
	body := fmt.Sprintf(`{
		"dateSale": %q,
		"name": "Second sale",
		"value": -1,
		"tax": 9000
	}`, future)
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/properties/"+primitive.NewObjectID().Hex()+"/traces", strings.NewReader(body))
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
	if len(resp.Fields["value"]) == 0 {
		t.Errorf("Expected a violation on 'value', got %v", resp.Fields)
	}
	if len(resp.Fields["dateSale"]) == 0 {
		t.Errorf("Expected a violation on 'dateSale', got %v", resp.Fields)
	}
}

func TestAddPropertyTrace_NegativeValueRejected(t *testing.T) {
	handler := newTraceTestServer(&mockListTracesUC{}, &mockAddTraceUC{}, &mockDeleteTraceUC{})

	body := `{
		"dateSale": "2023-03-10T00:00:00Z",
		"name": "Second sale",
		"value": -1,
		"tax": 9000
	}`
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/properties/"+primitive.NewObjectID().Hex()+"/traces", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestDeletePropertyTrace_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want int
	}{
		{name: "existing trace", ok: true, want: http.StatusNoContent},
		{name: "missing trace", ok: false, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTraceTestServer(&mockListTracesUC{}, &mockAddTraceUC{}, &mockDeleteTraceUC{ok: tt.ok})

			req := httptest.NewRequest(http.MethodDelete,
				"/api/v1/properties/"+primitive.NewObjectID().Hex()+"/traces/"+primitive.NewObjectID().Hex(), nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
