package upsert_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	upsertSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/upsert_schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgInvalidScheduleID  = "ID do agendamento inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidDate        = "data inválida, use AAAA-MM-DD ou DD/MM/AAAA"
	msgInvalidTime        = "horário inválido, use HH:MM"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgStoreNotFound      = "loja não encontrada"
	msgScheduleNotFound   = "agendamento não encontrado"
	msgCustomerNotFound   = "cliente não encontrado"
	msgEmployeeNotFound   = "funcionário não encontrado"
	msgNoServices         = "selecione pelo menos um serviço do catálogo"
	msgScheduleCompleted  = "agendamento concluído não pode ser alterado"
	msgForbidden          = "acesso negado"
)

type Handler struct {
	useCase UpsertScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpsertScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Create POST /api/v1/stores/{storeId}/schedules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /stores/{id}/schedules", nil)
}

// Update PUT /api/v1/stores/{storeId}/schedules/{scheduleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}
	h.handle(w, r, "PUT /stores/{id}/schedules/{id}", &scheduleID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, scheduleID *uuid.UUID) {
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

	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, storeID, scheduleID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", route, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, upsertSchedule.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, upsertSchedule.ErrNoServices):
			h.logger.Warn("%s - No valid services: store_id=%s", route, storeID)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, upsertSchedule.ErrStoreNotFound):
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, upsertSchedule.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, upsertSchedule.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, upsertSchedule.ErrEmployeeNotFound):
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, upsertSchedule.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: store_id=%s, user_id=%s", route, storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, upsertSchedule.ErrScheduleCompleted):
			handlers.RespondConflict(w, msgScheduleCompleted)

		default:
			h.logger.Error("%s - Failed to save schedule: store_id=%s, error=%v", route, storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("%s - Schedule saved: schedule_id=%s, total=%.2f, duration=%s",
		route, result.Schedule.ID, result.Schedule.Total, result.Schedule.Duration)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
