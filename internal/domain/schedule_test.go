package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSchedule_CanBeCompleted(t *testing.T) {
	scheduled := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s := &Schedule{ScheduledDate: scheduled}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "day before", now: time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), want: false},
		{name: "same day morning", now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), want: true},
		{name: "later", now: time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CanBeCompleted(tt.now))
		})
	}
}

func TestSchedule_CanBeEdited(t *testing.T) {
	assert.True(t, (&Schedule{}).CanBeEdited())
	assert.False(t, (&Schedule{Completed: true}).CanBeEdited())
}

func TestCommissionType_IsValid(t *testing.T) {
	assert.True(t, CommissionFull.IsValid())
	assert.True(t, CommissionPercentage.IsValid())
	assert.True(t, CommissionFixed.IsValid())
	assert.False(t, CommissionType("bonus").IsValid())
	assert.False(t, CommissionType("").IsValid())
}

func TestCatalog(t *testing.T) {
	a := &Service{ID: uuid.New(), Value: 29.9, Duration: "00:30"}
	b := &Service{ID: uuid.New(), Value: 59.9, Duration: "01:00"}

	items := Catalog([]*Service{a, b})

	assert.Len(t, items, 2)
	assert.Equal(t, 59.9, items[b.ID.String()].Value)
	assert.Equal(t, "00:30", items[a.ID.String()].Duration)
}
