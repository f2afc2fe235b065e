package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
	"github.com/m04kA/SMC-StoreAdmin/pkg/ptr"
)

// Request модели

// EmployeeRequest данные сотрудника для создания и обновления
type EmployeeRequest struct {
	UserID          uuid.UUID `json:"-"`
	StoreID         uuid.UUID `json:"-"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Function        string    `json:"function"`
	Phone           string    `json:"phone,omitempty"`
	CPF             string    `json:"cpf,omitempty"`
	CommissionType  string    `json:"commissionType,omitempty"` // full | percentage | fixed
	CommissionValue float64   `json:"commissionValue"`
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID              uuid.UUID `json:"id"`
	StoreID         uuid.UUID `json:"storeId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Function        string    `json:"function"`
	Phone           *string   `json:"phone,omitempty"`
	PhoneDisplay    *string   `json:"phoneDisplay,omitempty"`
	CPF             *string   `json:"cpf,omitempty"`
	CPFDisplay      *string   `json:"cpfDisplay,omitempty"`
	CommissionType  string    `json:"commissionType"`
	CommissionValue float64   `json:"commissionValue"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EmployeeListResponse список сотрудников
type EmployeeListResponse struct {
	Employees []*EmployeeResponse `json:"employees"`
	Total     int                 `json:"total"`
}

// FromDomainEmployee конвертирует domain.Employee в EmployeeResponse
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:              e.ID,
		StoreID:         e.StoreID,
		Name:            e.Name,
		Email:           e.Email,
		Function:        e.Function,
		Phone:           e.Phone,
		CPF:             e.CPF,
		CommissionType:  string(e.CommissionType),
		CommissionValue: e.CommissionValue,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.Phone != nil {
		resp.PhoneDisplay = ptr.Ptr(mask.Format(*e.Phone, mask.Phone))
	}
	if e.CPF != nil {
		resp.CPFDisplay = ptr.Ptr(mask.Format(*e.CPF, mask.ShortTaxID))
	}

	return resp
}

// FromDomainEmployeeList конвертирует список сотрудников
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromDomainEmployee(e))
	}
	return &EmployeeListResponse{Employees: out, Total: len(out)}
}
