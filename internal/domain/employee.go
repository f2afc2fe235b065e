package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommissionType represents how an employee is paid for a service
type CommissionType string

const (
	CommissionFull       CommissionType = "full"
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

// DefaultCommissionType is used when the type is not specified
const DefaultCommissionType = CommissionPercentage

// IsValid returns true if the commission type is known
func (c CommissionType) IsValid() bool {
	switch c {
	case CommissionFull, CommissionPercentage, CommissionFixed:
		return true
	}
	return false
}

// Employee represents a professional working at a store
type Employee struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Name            string
	Email           string
	Function        string
	Phone           *string // digits only
	CPF             *string // digits only
	CommissionType  CommissionType
	CommissionValue float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
