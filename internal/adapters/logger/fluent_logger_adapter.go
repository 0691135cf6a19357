package logger_adapter

import (
	"log/slog"

	"catalog-service/internal/core/port"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentAdapter отправляет логи в fluent-bit.
type FluentAdapter struct {
	client     *fluent.Fluent
	tag        string
	baseFields port.Fields
	minLevel   slog.Level
}

// NewFluentAdapter создает адаптер поверх уже установленного соединения с fluent-bit.
func NewFluentAdapter(client *fluent.Fluent, tag string, minLevel slog.Level) port.LoggerPort {
	return &FluentAdapter{
		client:     client,
		tag:        tag,
		baseFields: port.Fields{},
		minLevel:   minLevel,
	}
}

// mergeFields объединяет базовые поля логгера с полями конкретной записи
func (a *FluentAdapter) mergeFields(fields port.Fields) map[string]interface{} {
	merged := make(map[string]interface{}, len(a.baseFields)+len(fields)+2)
	for k, v := range a.baseFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentAdapter) post(level string, msg string, fields map[string]interface{}) {
	fields["level"] = level
	fields["message"] = msg
	// ошибку отправки глотаем: логирование не должно ронять запрос
	_ = a.client.Post(a.tag, fields)
}

func (a *FluentAdapter) Info(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelInfo {
		return
	}
	a.post("info", msg, a.mergeFields(fields))
}

func (a *FluentAdapter) Warn(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelWarn {
		return
	}
	a.post("warn", msg, a.mergeFields(fields))
}

func (a *FluentAdapter) Error(msg string, err error, fields port.Fields) {
	merged := a.mergeFields(fields)
	if err != nil {
		merged["error"] = err.Error()
	}
	a.post("error", msg, merged)
}

func (a *FluentAdapter) Debug(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelDebug {
		return
	}
	a.post("debug", msg, a.mergeFields(fields))
}

func (a *FluentAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentAdapter{
		client:     a.client,
		tag:        a.tag,
		baseFields: a.mergeFields(fields),
		minLevel:   a.minLevel,
	}
}

// Close закрывает соединение с fluent-bit.
func (a *FluentAdapter) Close() error {
	return a.client.Close()
}
