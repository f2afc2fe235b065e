package calculate_totals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	calculateTotals "github.com/m04kA/SMC-StoreAdmin/internal/usecase/calculate_totals"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStoreID     = "ID da loja inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgStoreNotFound      = "loja não encontrada"
	msgForbidden          = "acesso negado"
)

type Handler struct {
	useCase CalculateTotalsUseCase
	logger  Logger
}

func NewHandler(useCase CalculateTotalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stores/{storeId}/schedules/totals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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

	var req TotalsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/totals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculateTotals.Request{
		UserID:     userID,
		StoreID:    storeID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculateTotals.ErrStoreNotFound):
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, calculateTotals.ErrAccessDenied):
			h.logger.Warn("POST /schedules/totals - Access denied: store_id=%s, user_id=%s", storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /schedules/totals - Failed: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
