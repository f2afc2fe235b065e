package employees

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/employees"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgInvalidEmployeeID  = "ID do funcionário inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidInput       = "dados do funcionário inválidos"
	msgInvalidCommission  = "comissão inválida"
	msgStoreNotFound      = "loja não encontrada"
	msgNotFound           = "funcionário não encontrado"
	msgForbidden          = "acesso negado"
)

// Handler обработчики сотрудников магазина
type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/stores/{storeId}/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), storeID, userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}/employees", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/stores/{storeId}/employees
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores/{id}/employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	employee, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /stores/{id}/employees", err)
		return
	}

	h.logger.Info("POST /stores/{id}/employees - Employee created: employee_id=%s, store_id=%s", employee.ID, storeID)
	handlers.RespondJSON(w, http.StatusCreated, employee)
}

// Update PUT /api/v1/stores/{storeId}/employees/{employeeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	employeeID, err := handlers.PathUUID(r, "employeeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id}/employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StoreID = storeID
	req.UserID = userID

	employee, err := h.service.Update(r.Context(), employeeID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /stores/{id}/employees/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employee)
}

// Delete DELETE /api/v1/stores/{storeId}/employees/{employeeId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	employeeID, err := handlers.PathUUID(r, "employeeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.service.Delete(r.Context(), storeID, employeeID, userID); err != nil {
		h.respondServiceError(w, "DELETE /stores/{id}/employees/{id}", err)
		return
	}

	h.logger.Info("DELETE /stores/{id}/employees/{id} - Employee deleted: employee_id=%s", employeeID)
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
	case errors.Is(err, employees.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, employees.ErrInvalidCommission):
		h.logger.Warn("%s - Invalid commission: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCommission)

	case errors.Is(err, employees.ErrStoreNotFound):
		h.logger.Warn("%s - Store not found", route)
		handlers.RespondNotFound(w, msgStoreNotFound)

	case errors.Is(err, employees.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, employees.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
