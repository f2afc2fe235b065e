package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/pkg/types"
)

// Schedule represents an appointment of a customer with an employee
type Schedule struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	CustomerID    uuid.UUID
	EmployeeID    uuid.UUID
	ScheduledDate time.Time
	ScheduledTime types.TimeString
	ServiceIDs    []uuid.UUID

	// Derived from the selected services at save time
	Total    float64
	Duration string // HH:mm

	Completed   bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeEdited returns true if the schedule can still be changed
func (s *Schedule) CanBeEdited() bool {
	return !s.Completed
}

// CanBeCompleted returns true if the scheduled day has been reached
func (s *Schedule) CanBeCompleted(now time.Time) bool {
	return !dateOnly(now).Before(dateOnly(s.ScheduledDate))
}

// ScheduleFilter фильтр для получения записей магазина
type ScheduleFilter struct {
	StoreID uuid.UUID
	Date    *time.Time // если nil - все даты
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
