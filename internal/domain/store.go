package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a service store (barber shop, salon) managed by its owner
type Store struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Slug      string
	Phone     string // digits only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the user owns the store
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
