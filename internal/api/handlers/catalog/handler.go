package catalog

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgInvalidServiceID  = "ID do serviço inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidInput       = "dados do serviço inválidos"
	msgInvalidDuration    = "duração inválida, use por exemplo 01:30 ou 1h 30min"
	msgStoreNotFound      = "loja não encontrada"
	msgNotFound           = "serviço não encontrado"
	msgForbidden          = "acesso negado"
)

// Handler обработчики каталога услуг магазина
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/stores/{storeId}/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), storeID, userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}/services", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/stores/{storeId}/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /stores/{id}/services", err)
		return
	}

	h.logger.Info("POST /stores/{id}/services - Service created: service_id=%s, store_id=%s", item.ID, storeID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Update PUT /api/v1/stores/{storeId}/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id}/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	item, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /stores/{id}/services/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// Delete DELETE /api/v1/stores/{storeId}/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), storeID, serviceID, userID); err != nil {
		h.respondServiceError(w, "DELETE /stores/{id}/services/{id}", err)
		return
	}

	h.logger.Info("DELETE /stores/{id}/services/{id} - Service deleted: service_id=%s", serviceID)
	handlers.RespondNoContent(w)
}

// scope достаёт ID магазина из пути и ID пользователя из контекста
func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	storeID, err := handlers.PathUUID(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return uuid.Nil, uuid.Nil, false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return uuid.Nil, uuid.Nil, false
	}

	return storeID, userID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, catalog.ErrInvalidDuration):
		h.logger.Warn("%s - Invalid duration: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)

	case errors.Is(err, catalog.ErrStoreNotFound):
		h.logger.Warn("%s - Store not found", route)
		handlers.RespondNotFound(w, msgStoreNotFound)

	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalog.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
