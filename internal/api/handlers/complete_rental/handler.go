package complete_rental

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	completeRental "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReturnDate  = "некорректная дата возврата, ожидается YYYY-MM-DD или RFC 3339"
	msgRentalNotFound     = "аренда не найдена"
	msgRentalNotActive    = "аренда уже завершена"
	msgConcurrentUpdate   = "конкурентное изменение, повторите запрос"
)

type Handler struct {
	useCase CompleteRentalUseCase
	logger  Logger
}

func NewHandler(useCase CompleteRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/{rentalId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(mux.Vars(r)["rentalId"])
	if err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/complete - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req CompleteRentalRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	returnDate, err := handlers.ParseOptionalDate(req.ReturnDate)
	if err != nil {
		h.logger.Warn("POST /rentals/{rentalId}/complete - Invalid return date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReturnDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeRental.Request{
		RentalID:   rentalID,
		ReturnDate: returnDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeRental.ErrRentalNotFound):
			h.logger.Warn("POST /rentals/{rentalId}/complete - Rental not found: rental_id=%s", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		case errors.Is(err, domain.ErrNotActive):
			h.logger.Warn("POST /rentals/{rentalId}/complete - Rental not active: rental_id=%s", rentalID)
			handlers.RespondConflict(w, msgRentalNotActive)

		case errors.Is(err, completeRental.ErrConcurrentUpdate):
			h.logger.Warn("POST /rentals/{rentalId}/complete - Concurrent update: rental_id=%s", rentalID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, completeRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals/{rentalId}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRentalID)

		default:
			h.logger.Error("POST /rentals/{rentalId}/complete - Failed to complete rental: rental_id=%s, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals/{rentalId}/complete - Rental completed: rental_id=%s, kind=%s, total=%s",
		result.ID, result.ReturnKind, result.TotalAmount.StringFixed(domain.MoneyScale))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
