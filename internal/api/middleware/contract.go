package middleware

import "time"

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
