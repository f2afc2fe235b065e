package apply_mask

// Metrics счётчик применений масок
type Metrics interface {
	IncMaskApplication(kind string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
