package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldViolations — нарушения валидации, сгруппированные по полям.
// Сообщения накапливаются: отчет содержит все нарушения сразу,
// а не только первое.
type FieldViolations map[string][]string

func (v FieldViolations) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v FieldViolations) Empty() bool {
	return len(v) == 0
}

// ValidateRequest проверяет тело запроса по схеме requestType
// (например, "CreatePropertyRequest") версии 1.0.0.
// Ошибка возвращается только при отсутствии схемы — нарушения
// клиентского ввода попадают в FieldViolations.
func ValidateRequest(requestType string, body []byte) (FieldViolations, error) {
	key := fmt.Sprintf("%s/1.0.0", requestType)
	schema, ok := compiledSchemas[key]
	if !ok {
		return nil, fmt.Errorf("schema for request '%s' not found", requestType)
	}

	violations := FieldViolations{}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		violations.Add("body", "request body is not valid JSON")
		return violations, nil
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		collectViolations(ve, violations)
	}

	return violations, nil
}

// ValidateEvent проверяет исходящее событие по схеме контракта.
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", eventType, eventVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventType, eventVersion)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("event body is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("event does not match schema %s: %w", key, err)
	}
	return nil
}

// collectViolations разворачивает дерево причин в плоский список по полям.
func collectViolations(ve *jsonschema.ValidationError, out FieldViolations) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		field = strings.ReplaceAll(field, "/", ".")
		if field == "" {
			field = "body"
		}
		out.Add(field, ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectViolations(cause, out)
	}
}
