package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidAssetID   = "некорректный ID транспортного средства"
	msgInvalidPlan      = "некорректный тарифный план, доступны 7, 15, 30, 45 и 50 дней"
	msgInvalidStartDate = "некорректная дата начала, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/assets/{assetId}/availability?plan=7&startDate=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(mux.Vars(r)["assetId"])
	if err != nil {
		h.logger.Warn("GET /assets/{assetId}/availability - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	query := r.URL.Query()

	days, err := strconv.Atoi(query.Get("plan"))
	if err != nil {
		h.logger.Warn("GET /assets/{assetId}/availability - Invalid plan: %q", query.Get("plan"))
		handlers.RespondBadRequest(w, msgInvalidPlan)
		return
	}

	startDate, err := handlers.ParseDate(query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /assets/{assetId}/availability - Invalid start date: %q", query.Get("startDate"))
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), assetID, domain.Plan(days), startDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlan) {
			h.logger.Warn("GET /assets/{assetId}/availability - Unknown plan: days=%d", days)
			handlers.RespondBadRequest(w, msgInvalidPlan)
			return
		}
		h.logger.Error("GET /assets/{assetId}/availability - Failed to check availability: asset_id=%s, error=%v",
			assetID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /assets/{assetId}/availability - asset_id=%s, available=%t", assetID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
