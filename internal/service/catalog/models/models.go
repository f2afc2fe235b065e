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

// ServiceRequest данные услуги для создания и обновления
// Цена передаётся либо числом (value), либо сырым значением маски валюты в центах (valueCents)
type ServiceRequest struct {
	UserID     uuid.UUID `json:"-"`
	StoreID    uuid.UUID `json:"-"`
	Name       string    `json:"name"`
	Value      *float64  `json:"value,omitempty"`
	ValueCents string    `json:"valueCents,omitempty"`
	Duration   string    `json:"duration"` // "01:30", "1h 30m", "45 min"
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"storeId"`
	Name         string    `json:"name"`
	Value        float64   `json:"value"`
	ValueCents   string    `json:"valueCents"`
	ValueDisplay string    `json:"valueDisplay"` // "R$ 29,90"
	Duration     string    `json:"duration"`     // "00:30"
	Minutes      int       `json:"minutes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ServiceListResponse каталог услуг магазина
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s *domain.Service) *ServiceResponse {
	cents := strconv.FormatInt(totals.ToCents(s.Value), 10)
	return &ServiceResponse{
		ID:           s.ID,
		StoreID:      s.StoreID,
		Name:         s.Name,
		Value:        s.Value,
		ValueCents:   cents,
		ValueDisplay: mask.Format(cents, mask.Currency),
		Duration:     s.Duration,
		Minutes:      totals.ParseDuration(s.Duration),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует каталог
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}
