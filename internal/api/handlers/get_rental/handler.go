package get_rental

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "некорректный ID аренды"
	msgRentalNotFound  = "аренда не найдена"
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

// Handle GET /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(mux.Vars(r)["rentalId"])
	if err != nil {
		h.logger.Warn("GET /rentals/{rentalId} - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	result, err := h.service.GetByID(r.Context(), rentalID)
	if err != nil {
		if errors.Is(err, rentals.ErrRentalNotFound) {
			h.logger.Warn("GET /rentals/{rentalId} - Rental not found: rental_id=%s", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)
			return
		}
		h.logger.Error("GET /rentals/{rentalId} - Failed to get rental: rental_id=%s, error=%v", rentalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
