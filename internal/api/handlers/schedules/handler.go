package schedules

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/schedules"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/schedules/models"
)

const (
	msgInvalidStoreID    = "ID da loja inválido"
	msgInvalidScheduleID = "ID do agendamento inválido"
	msgInvalidDate       = "data inválida, use AAAA-MM-DD ou DD/MM/AAAA"
	msgMissingUserID     = "ID do usuário ausente"
	msgStoreNotFound     = "loja não encontrada"
	msgNotFound          = "agendamento não encontrado"
	msgForbidden         = "acesso negado"
)

// Handler чтение и удаление записей магазина
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/stores/{storeId}/schedules?date=YYYY-MM-DD
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	req := &models.ListSchedulesRequest{UserID: userID, StoreID: storeID}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := handlers.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /stores/{id}/schedules - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}/schedules", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/stores/{storeId}/schedules/{scheduleId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	schedule, err := h.service.GetByID(r.Context(), storeID, scheduleID, userID)
	if err != nil {
		h.respondServiceError(w, "GET /stores/{id}/schedules/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}

// Delete DELETE /api/v1/stores/{storeId}/schedules/{scheduleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, userID, ok := h.scope(w, r)
	if !ok {
		return
	}

	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), storeID, scheduleID, userID); err != nil {
		h.respondServiceError(w, "DELETE /stores/{id}/schedules/{id}", err)
		return
	}

	h.logger.Info("DELETE /stores/{id}/schedules/{id} - Schedule deleted: schedule_id=%s", scheduleID)
	handlers.RespondNoContent(w)
}

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
	case errors.Is(err, schedules.ErrStoreNotFound):
		handlers.RespondNotFound(w, msgStoreNotFound)

	case errors.Is(err, schedules.ErrScheduleNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, schedules.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
