package create_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgInvalidInput       = "не указан арендатор или транспортное средство"
	msgInvalidPlan        = "некорректный тарифный план, доступны 7, 15, 30, 45 и 50 дней"
	msgRenterNotFound     = "арендатор не найден"
	msgRenterNotEligible  = "арендатору недоступна аренда: требуется категория A"
	msgAssetNotFound      = "транспортное средство не найдено"
	msgAssetUnavailable   = "транспортное средство занято в выбранный период"
	msgStartDateInPast    = "дата начала аренды в прошлом"
	msgStartDateTooFar    = "дата начала аренды слишком далеко в будущем"
	msgConcurrentUpdate   = "конкурентное изменение, повторите запрос"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rentals - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrInvalidPlan):
			h.logger.Warn("POST /rentals - Invalid plan: plan=%d", req.Plan)
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, createRental.ErrInvalidStartDate):
			h.logger.Warn("POST /rentals - Start date in the past: renter_id=%s", req.RenterID)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		case errors.Is(err, createRental.ErrStartDateTooFar):
			h.logger.Warn("POST /rentals - Start date too far: renter_id=%s", req.RenterID)
			handlers.RespondBadRequest(w, msgStartDateTooFar)

		case errors.Is(err, createRental.ErrRenterNotFound):
			h.logger.Warn("POST /rentals - Renter not found: renter_id=%s", req.RenterID)
			handlers.RespondNotFound(w, msgRenterNotFound)

		case errors.Is(err, createRental.ErrAssetNotFound):
			h.logger.Warn("POST /rentals - Asset not found: asset_id=%s", req.AssetID)
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, createRental.ErrRenterNotEligible):
			h.logger.Warn("POST /rentals - Renter not eligible: renter_id=%s", req.RenterID)
			handlers.RespondUnprocessable(w, msgRenterNotEligible)

		case errors.Is(err, domain.ErrAssetUnavailable):
			h.logger.Warn("POST /rentals - Asset unavailable: asset_id=%s", req.AssetID)
			handlers.RespondConflict(w, msgAssetUnavailable)

		case errors.Is(err, createRental.ErrConcurrentUpdate):
			h.logger.Warn("POST /rentals - Concurrent update: asset_id=%s", req.AssetID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /rentals - Failed to create rental: renter_id=%s, asset_id=%s, error=%v",
				req.RenterID, req.AssetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created successfully: rental_id=%s, renter_id=%s, asset_id=%s",
		result.ID, result.RenterID, result.AssetID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
