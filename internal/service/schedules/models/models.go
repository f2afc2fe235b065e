package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

// Request модели

// ListSchedulesRequest запрос на получение записей магазина
type ListSchedulesRequest struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	Date    *time.Time // опционально, записи на конкретный день
}

// Response модели

// ScheduleResponse ответ с данными записи
type ScheduleResponse struct {
	ID                   uuid.UUID   `json:"id"`
	StoreID              uuid.UUID   `json:"storeId"`
	CustomerID           uuid.UUID   `json:"customerId"`
	EmployeeID           uuid.UUID   `json:"employeeId"`
	ScheduledDate        string      `json:"scheduledDate"`        // "2025-05-20"
	ScheduledDateDisplay string      `json:"scheduledDateDisplay"` // "20/05/2025"
	ScheduledTime        string      `json:"scheduledTime"`        // "14:30"
	EndTime              string      `json:"endTime,omitempty"`    // время начала + длительность
	ServiceIDs           []uuid.UUID `json:"serviceIds"`
	Total                float64     `json:"total"`
	TotalDisplay         string      `json:"totalDisplay"` // "R$ 89,80"
	Duration             string      `json:"duration"`     // "01:30"
	Completed            bool        `json:"completed"`
	CompletedAt          *time.Time  `json:"completedAt,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// ScheduleListResponse список записей
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
	Total     int                 `json:"total"`
}

// FromDomainSchedule конвертирует domain.Schedule в ScheduleResponse
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	serviceIDs := s.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []uuid.UUID{}
	}

	return &ScheduleResponse{
		ID:                   s.ID,
		StoreID:              s.StoreID,
		CustomerID:           s.CustomerID,
		EmployeeID:           s.EmployeeID,
		ScheduledDate:        s.ScheduledDate.Format(domain.DateFormat),
		ScheduledDateDisplay: mask.Format(s.ScheduledDate.Format("02012006"), mask.Date),
		ScheduledTime:        s.ScheduledTime.String(),
		EndTime:              endTime(s),
		ServiceIDs:           serviceIDs,
		Total:                s.Total,
		TotalDisplay:         mask.Format(strconv.FormatInt(totals.ToCents(s.Total), 10), mask.Currency),
		Duration:             s.Duration,
		Completed:            s.Completed,
		CompletedAt:          s.CompletedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// endTime пусто, если запись заканчивается после полуночи или время не задано
func endTime(s *domain.Schedule) string {
	end, err := s.ScheduledTime.AddMinutes(totals.ParseDuration(s.Duration))
	if err != nil {
		return ""
	}
	return end.String()
}

// FromDomainScheduleList конвертирует список записей
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	out := make([]*ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, FromDomainSchedule(s))
	}
	return &ScheduleListResponse{Schedules: out, Total: len(out)}
}
