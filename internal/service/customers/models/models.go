package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

// Request модели

// CustomerRequest данные клиента для создания и обновления
type CustomerRequest struct {
	UserID  uuid.UUID `json:"-"`
	StoreID uuid.UUID `json:"-"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"` // цифры или маскированная строка
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"storeId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phoneDisplay"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CustomerListResponse список клиентов
type CustomerListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int                 `json:"total"`
}

// FromDomainCustomer конвертирует domain.Customer в CustomerResponse
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID,
		StoreID:      c.StoreID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PhoneDisplay: mask.Format(c.Phone, mask.Phone),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список клиентов
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromDomainCustomer(c))
	}
	return &CustomerListResponse{Customers: out, Total: len(out)}
}
