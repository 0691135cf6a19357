package logger_adapter

import (
	"catalog-service/internal/core/port"
)

// MultiLogger рассылает каждую запись во все вложенные логгеры.
type MultiLogger struct {
	loggers []port.LoggerPort
}

// NewMultiLogger создает логгер-мультиплексор.
func NewMultiLogger(loggers ...port.LoggerPort) port.LoggerPort {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) Info(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Info(msg, fields)
	}
}

func (m *MultiLogger) Warn(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Warn(msg, fields)
	}
}

func (m *MultiLogger) Error(msg string, err error, fields port.Fields) {
	for _, l := range m.loggers {
		l.Error(msg, err, fields)
	}
}

func (m *MultiLogger) Debug(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Debug(msg, fields)
	}
}

func (m *MultiLogger) WithFields(fields port.Fields) port.LoggerPort {
	enriched := make([]port.LoggerPort, len(m.loggers))
	for i, l := range m.loggers {
		enriched[i] = l.WithFields(fields)
	}
	return &MultiLogger{loggers: enriched}
}
