package get_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidDays = "некорректная длительность плана"
	msgPlanUnknown = "тарифный план не найден, доступны 7, 15, 30, 45 и 50 дней"
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

// Handle GET /api/v1/plans/{days}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(mux.Vars(r)["days"])
	if err != nil {
		h.logger.Warn("GET /plans/{days} - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.service.Quote(domain.Plan(days))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlan) {
			h.logger.Warn("GET /plans/{days} - Plan not found: days=%d", days)
			handlers.RespondNotFound(w, msgPlanUnknown)
			return
		}
		h.logger.Error("GET /plans/{days} - Failed to quote plan: days=%d, error=%v", days, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
