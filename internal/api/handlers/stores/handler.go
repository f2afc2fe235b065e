package stores

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/stores"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/stores/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgMissingSlug        = "parâmetro slug não informado"
	msgInvalidInput       = "dados da loja inválidos"
	msgNotFound           = "loja não encontrada"
	msgForbidden          = "acesso negado"
	msgSlugTaken          = "este endereço já está em uso"
)

// Handler обработчики магазинов
type Handler struct {
	service StoreService
	logger  Logger
}

func NewHandler(service StoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/stores
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = userID

	store, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /stores", err)
		return
	}

	h.logger.Info("POST /stores - Store created: store_id=%s, owner_id=%s", store.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, store)
}

// Update PUT /api/v1/stores/{storeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathUUID(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	store, err := h.service.Update(r.Context(), storeID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /stores/{id}", err)
		return
	}

	h.logger.Info("PUT /stores/{id} - Store updated: store_id=%s", storeID)
	handlers.RespondJSON(w, http.StatusOK, store)
}

// Get GET /api/v1/stores/{storeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathUUID(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	store, err := h.service.GetByID(r.Context(), storeID, userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, store)
}

// List GET /api/v1/stores
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// CheckSlug GET /api/v1/stores/slug-availability?slug=...
func (h *Handler) CheckSlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.CheckSlug(r.Context(), slug)
	if err != nil {
		h.respondServiceError(w, "GET /stores/slug-availability", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, stores.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, stores.ErrStoreNotFound):
		h.logger.Warn("%s - Store not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, stores.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, stores.ErrSlugTaken):
		h.logger.Warn("%s - Slug taken: %v", route, err)
		handlers.RespondConflict(w, msgSlugTaken)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
