package apply_mask

import (
	"net/http"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingMask        = "máscara não informada"
)

type Handler struct {
	metrics Metrics
	logger  Logger
}

func NewHandler(metrics Metrics, logger Logger) *Handler {
	return &Handler{
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/masks/apply
// Вызывается на каждое нажатие клавиши, поэтому успешные запросы не логируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyMaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /masks/apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Mask == "" {
		handlers.RespondBadRequest(w, msgMissingMask)
		return
	}

	spec := mask.Spec(req.Mask)
	field := mask.Apply(req.Value, spec)
	h.metrics.IncMaskApplication(string(spec.Kind()))

	handlers.RespondJSON(w, http.StatusOK, FromField(field, spec))
}
