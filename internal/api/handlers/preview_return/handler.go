package preview_return

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReturnDate  = "некорректная дата возврата, ожидается YYYY-MM-DD или RFC 3339"
	msgRentalNotFound     = "аренда не найдена"
)

type Handler struct {
	service ReturnService
	logger  Logger
}

func NewHandler(service ReturnService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/{rentalId}/calculate-return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(mux.Vars(r)["rentalId"])
	if err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/calculate-return - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req PreviewReturnRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/calculate-return - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	returnDate, err := handlers.ParseOptionalDate(req.ReturnDate)
	if err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/calculate-return - Invalid return date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReturnDate)
		return
	}

	result, err := h.service.PreviewReturn(r.Context(), rentalID, returnDate)
	if err != nil {
		if errors.Is(err, rentals.ErrRentalNotFound) {
			h.logger.Warn("POST /rentals/{rentalId}/calculate-return - Rental not found: rental_id=%s", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)
			return
		}
		h.logger.Error("POST /rentals/{rentalId}/calculate-return - Failed to calculate return: rental_id=%s, error=%v",
			rentalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
