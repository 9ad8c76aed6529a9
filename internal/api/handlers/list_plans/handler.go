package list_plans

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	service PlanService
	logger  Logger
}

func NewHandler(service PlanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plans := h.service.ListPlans()

	h.logger.Info("GET /plans - Plans retrieved successfully: count=%d", len(plans))
	handlers.RespondJSON(w, http.StatusOK, plans)
}
