package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a store customer
type Customer struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Email     string
	Phone     string // digits only
	CreatedAt time.Time
	UpdatedAt time.Time
}
