package calculate_totals

import "github.com/google/uuid"

// Request модель запроса на предварительный расчёт итогов
type Request struct {
	UserID     uuid.UUID
	StoreID    uuid.UUID
	ServiceIDs []uuid.UUID // пустой выбор допустим: итог 0 и "00:00"
}

// Response итоги по выбранным услугам
type Response struct {
	Total        float64
	TotalCents   int64
	TotalDisplay string // "R$ 89,80"
	Minutes      int
	Duration     string // "01:30"

	ServiceIDs []uuid.UUID // учтённые услуги без повторов
	MissingIDs []uuid.UUID // выбранные, но отсутствующие в каталоге
}
