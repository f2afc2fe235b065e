package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

// Service represents a priced service offered by a store
type Service struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Value     float64
	Duration  string // HH:mm
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem returns the service as an aggregation line item
func (s *Service) LineItem() totals.LineItem {
	return totals.LineItem{Value: s.Value, Duration: s.Duration}
}

// Catalog indexes services by id for aggregation
func Catalog(services []*Service) map[string]totals.LineItem {
	items := make(map[string]totals.LineItem, len(services))
	for _, s := range services {
		items[s.ID.String()] = s.LineItem()
	}
	return items
}
