package contracts

import (
	"testing"
)

func TestValidateRequest_UnknownSchemaIsAnError(t *testing.T) {
	_, err := ValidateRequest("NoSuchRequest", []byte(`{}`))
	if err == nil {
		t.Fatal("Expected an error for an unknown schema")
	}
}

func TestValidateRequest_MalformedJSONReportsBody(t *testing.T) {
	violations, err := ValidateRequest("CreatePropertyRequest", []byte(`{not json`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(violations["body"]) == 0 {
		t.Errorf("Expected a violation on 'body', got %v", violations)
	}
}

func TestValidateRequest_ValidPropertyPasses(t *testing.T) {
	body := []byte(`{
		"idOwner": "507f1f77bcf86cd799439011",
		"name": "Villa Aurora",
		"address": "12 Seaside Blvd",
		"price": 250000,
		"codeInternal": "VA-001",
		"year": 2015
	}`)

	violations, err := ValidateRequest("CreatePropertyRequest", body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !violations.Empty() {
		t.Errorf("Expected no violations, got %v", violations)
	}
}

func TestValidateRequest_CollectsAllViolationsAtOnce(t *testing.T) {
	// несколько нарушений сразу: неверный формат id, пустое имя, цена <= 0
	body := []byte(`{
		"idOwner": "nope",
		"name": "",
		"address": "12 Seaside Blvd",
		"price": 0,
		"year": 2015
	}`)

	violations, err := ValidateRequest("CreatePropertyRequest", body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, field := range []string{"idOwner", "name", "price"} {
		if len(violations[field]) == 0 {
			t.Errorf("Expected a violation on %q, got %v", field, violations)
		}
	}
}

func TestValidateRequest_MissingRequiredFields(t *testing.T) {
	violations, err := ValidateRequest("CreatePropertyRequest", []byte(`{}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if violations.Empty() {
		t.Error("Expected violations for an empty object")
	}
}

func TestValidateRequest_OwnerBirthdayFormat(t *testing.T) {
	body := []byte(`{
		"name": "John Carter",
		"address": "221B Baker St",
		"birthday": "not-a-date"
	}`)

	violations, err := ValidateRequest("CreateOwnerRequest", body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(violations["birthday"]) == 0 {
		t.Errorf("Expected a violation on 'birthday', got %v", violations)
	}
}

func TestValidateEvent_PropertyChanged(t *testing.T) {
	valid := []byte(`{
		"action": "created",
		"propertyId": "507f1f77bcf86cd799439011",
		"occurredAt": "2024-01-15T10:30:00Z"
	}`)
	if err := ValidateEvent("PropertyChangedEvent", "1.0.0", valid); err != nil {
		t.Errorf("Expected a valid event, got %v", err)
	}

	badAction := []byte(`{
		"action": "renamed",
		"propertyId": "507f1f77bcf86cd799439011",
		"occurredAt": "2024-01-15T10:30:00Z"
	}`)
	if err := ValidateEvent("PropertyChangedEvent", "1.0.0", badAction); err == nil {
		t.Error("Expected an error for an unknown action")
	}
}
