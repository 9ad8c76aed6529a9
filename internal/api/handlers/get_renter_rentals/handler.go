package get_renter_rentals

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

const (
	msgInvalidRenterID = "некорректный ID арендатора"
	msgInvalidStatus   = "некорректный статус, ожидается active или completed"
)

type Handler struct {
	service RentalService
	logger  Logger
}

func NewHandler(service RentalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/renters/{renterId}/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	renterID, err := uuid.Parse(mux.Vars(r)["renterId"])
	if err != nil {
		h.logger.Warn("GET /renters/{renterId}/rentals - Invalid renter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRenterID)
		return
	}

	// Получаем status из query параметров (опционально)
	var statusPtr *string
	if status := r.URL.Query().Get("status"); status != "" {
		statusPtr = ptr.Ptr(status)
	}

	result, err := h.service.GetRenterRentals(r.Context(), &models.GetRenterRentalsRequest{
		RenterID: renterID,
		Status:   statusPtr,
	})
	if err != nil {
		if errors.Is(err, rentals.ErrInvalidInput) {
			h.logger.Warn("GET /renters/{renterId}/rentals - Invalid status: renter_id=%s", renterID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /renters/{renterId}/rentals - Failed to get rentals: renter_id=%s, error=%v",
			renterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /renters/{renterId}/rentals - Rentals retrieved successfully: renter_id=%s, count=%d",
		renterID, len(result.Rentals))
	handlers.RespondJSON(w, http.StatusOK, result.Rentals)
}
