package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

// Request модели

// CreateStoreRequest запрос на создание магазина (онбординг)
type CreateStoreRequest struct {
	OwnerID uuid.UUID `json:"-"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"` // если пусто - строится из названия
	Phone   string    `json:"phone"`
}

// UpdateStoreRequest запрос на обновление магазина
type UpdateStoreRequest struct {
	UserID uuid.UUID `json:"-"`
	Name   string    `json:"name"`
	Slug   string    `json:"slug"`
	Phone  string    `json:"phone"`
}

// Response модели

// StoreResponse ответ с данными магазина
type StoreResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phoneDisplay"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SlugAvailabilityResponse ответ на проверку slug
type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// FromDomainStore конвертирует domain.Store в StoreResponse
func FromDomainStore(s *domain.Store) *StoreResponse {
	return &StoreResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Slug:         s.Slug,
		Phone:        s.Phone,
		PhoneDisplay: mask.Format(s.Phone, mask.Phone),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainStoreList конвертирует список магазинов
func FromDomainStoreList(stores []*domain.Store) []*StoreResponse {
	out := make([]*StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromDomainStore(s))
	}
	return out
}
