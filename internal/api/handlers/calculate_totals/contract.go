package calculate_totals

import (
	"context"

	calculateTotals "github.com/m04kA/SMC-StoreAdmin/internal/usecase/calculate_totals"
)

type CalculateTotalsUseCase interface {
	Execute(ctx context.Context, req *calculateTotals.Request) (*calculateTotals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
