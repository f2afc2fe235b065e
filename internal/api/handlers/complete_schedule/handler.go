package complete_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	completeSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/complete_schedule"
)

const (
	msgInvalidStoreID    = "ID da loja inválido"
	msgInvalidScheduleID = "ID do agendamento inválido"
	msgMissingUserID     = "ID do usuário ausente"
	msgStoreNotFound     = "loja não encontrada"
	msgScheduleNotFound  = "agendamento não encontrado"
	msgForbidden         = "acesso negado"
	msgAlreadyCompleted  = "agendamento já foi concluído"
	msgTooEarly          = "o agendamento só pode ser concluído a partir da data marcada"
)

// CompleteScheduleResponse результат завершения записи
type CompleteScheduleResponse struct {
	ID          uuid.UUID `json:"id"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

type Handler struct {
	useCase CompleteScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CompleteScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/stores/{storeId}/schedules/{scheduleId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathUUID(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeSchedule.Request{
		UserID:     userID,
		StoreID:    storeID,
		ScheduleID: scheduleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeSchedule.ErrStoreNotFound):
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, completeSchedule.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, completeSchedule.ErrAccessDenied):
			h.logger.Warn("PATCH /schedules/{id}/complete - Access denied: store_id=%s, user_id=%s", storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, completeSchedule.ErrAlreadyCompleted):
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, completeSchedule.ErrTooEarly):
			handlers.RespondBadRequest(w, msgTooEarly)

		default:
			h.logger.Error("PATCH /schedules/{id}/complete - Failed: schedule_id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id}/complete - Schedule completed: schedule_id=%s", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, &CompleteScheduleResponse{
		ID:          result.ScheduleID,
		Completed:   true,
		CompletedAt: result.CompletedAt,
	})
}
