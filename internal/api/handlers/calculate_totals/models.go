package calculate_totals

import (
	"strconv"

	"github.com/google/uuid"

	calculateTotals "github.com/m04kA/SMC-StoreAdmin/internal/usecase/calculate_totals"
)

// TotalsRequest текущий выбор услуг в форме записи
type TotalsRequest struct {
	ServiceIDs []uuid.UUID `json:"serviceIds"`
}

// TotalsResponse значения полей "итого" и "длительность"
type TotalsResponse struct {
	Total        float64     `json:"total"`
	TotalCents   string      `json:"totalCents"` // сырое значение маски currency
	TotalDisplay string      `json:"totalDisplay"`
	Duration     string      `json:"duration"`
	Minutes      int         `json:"minutes"`
	ServiceIDs   []uuid.UUID `json:"serviceIds"`
	MissingIDs   []uuid.UUID `json:"missingServiceIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *calculateTotals.Response) *TotalsResponse {
	return &TotalsResponse{
		Total:        resp.Total,
		TotalCents:   strconv.FormatInt(resp.TotalCents, 10),
		TotalDisplay: resp.TotalDisplay,
		Duration:     resp.Duration,
		Minutes:      resp.Minutes,
		ServiceIDs:   resp.ServiceIDs,
		MissingIDs:   resp.MissingIDs,
	}
}
