package customers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/customers"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgInvalidCustomerID  = "ID do cliente inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidInput       = "dados do cliente inválidos"
	msgStoreNotFound      = "loja não encontrada"
	msgNotFound           = "cliente não encontrado"
	msgForbidden          = "acesso negado"
)

// Handler обработчики клиентов магазина
type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/stores/{storeId}/customers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), storeID, userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}/customers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/stores/{storeId}/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores/{id}/customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /stores/{id}/customers", err)
		return
	}

	h.logger.Info("POST /stores/{id}/customers - Customer created: customer_id=%s, store_id=%s", customer.ID, storeID)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}

// Update PUT /api/v1/stores/{storeId}/customers/{customerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	customerID, err := handlers.PathUUID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id}/customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	customer, err := h.service.Update(r.Context(), customerID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /stores/{id}/customers/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, customer)
}

// Delete DELETE /api/v1/stores/{storeId}/customers/{customerId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	customerID, err := handlers.PathUUID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if err := h.service.Delete(r.Context(), storeID, customerID, userID); err != nil {
		h.respondServiceError(w, "DELETE /stores/{id}/customers/{id}", err)
		return
	}

	h.logger.Info("DELETE /stores/{id}/customers/{id} - Customer deleted: customer_id=%s", customerID)
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
	case errors.Is(err, customers.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, customers.ErrStoreNotFound):
		h.logger.Warn("%s - Store not found", route)
		handlers.RespondNotFound(w, msgStoreNotFound)

	case errors.Is(err, customers.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, customers.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
