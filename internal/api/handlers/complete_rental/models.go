package complete_rental

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
	completeRental "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
)

// CompleteRentalRequest HTTP request model
type CompleteRentalRequest struct {
	ReturnDate *string `json:"returnDate,omitempty"` // YYYY-MM-DD или RFC 3339, по умолчанию текущее время
}

// CompletedRentalResponse HTTP response model
type CompletedRentalResponse struct {
	ID                   uuid.UUID `json:"id"`
	RenterID             uuid.UUID `json:"renterId"`
	AssetID              uuid.UUID `json:"assetId"`
	PlanDays             int       `json:"planDays"`
	StartDate            string    `json:"startDate"`
	ExpectedEndDate      string    `json:"expectedEndDate"`
	EndDate              string    `json:"endDate"`
	DailyRate            string    `json:"dailyRate"`
	TotalAmount          string    `json:"totalAmount"`
	FineAmount           *string   `json:"fineAmount,omitempty"`
	AdditionalDaysAmount *string   `json:"additionalDaysAmount,omitempty"`
	Status               string    `json:"status"`
	ReturnKind           string    `json:"returnKind"`
	DaysUsed             int       `json:"daysUsed"`
	DaysRemaining        int       `json:"daysRemaining"`
	AdditionalDays       int       `json:"additionalDays"`
	CreatedAt            string    `json:"createdAt"`
	UpdatedAt            string    `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeRental.Response) *CompletedRentalResponse {
	return &CompletedRentalResponse{
		ID:                   resp.ID,
		RenterID:             resp.RenterID,
		AssetID:              resp.AssetID,
		PlanDays:             resp.PlanDays,
		StartDate:            resp.StartDate.Format(time.RFC3339),
		ExpectedEndDate:      resp.ExpectedEndDate.Format(time.RFC3339),
		EndDate:              resp.EndDate.Format(time.RFC3339),
		DailyRate:            models.Money(resp.DailyRate),
		TotalAmount:          models.Money(resp.TotalAmount),
		FineAmount:           models.MoneyPtr(resp.FineAmount),
		AdditionalDaysAmount: models.MoneyPtr(resp.AdditionalDaysAmount),
		Status:               resp.Status,
		ReturnKind:           resp.ReturnKind,
		DaysUsed:             resp.DaysUsed,
		DaysRemaining:        resp.DaysRemaining,
		AdditionalDays:       resp.AdditionalDays,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
