package create_rental

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	RenterID  uuid.UUID `json:"renterId"`
	AssetID   uuid.UUID `json:"assetId"`
	Plan      int       `json:"plan"`                // 7, 15, 30, 45 или 50
	StartDate *string   `json:"startDate,omitempty"` // "2025-10-15", по умолчанию завтра
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID              uuid.UUID `json:"id"`
	RenterID        uuid.UUID `json:"renterId"`
	AssetID         uuid.UUID `json:"assetId"`
	PlanDays        int       `json:"planDays"`
	StartDate       string    `json:"startDate"`
	ExpectedEndDate string    `json:"expectedEndDate"`
	EndDate         string    `json:"endDate"`
	DailyRate       string    `json:"dailyRate"`
	TotalAmount     string    `json:"totalAmount"`
	Status          string    `json:"status"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRentalRequest) ToUseCaseRequest() (*createRental.Request, error) {
	startDate, err := handlers.ParseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	return &createRental.Request{
		RenterID:  r.RenterID,
		AssetID:   r.AssetID,
		Plan:      domain.Plan(r.Plan),
		StartDate: startDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRental.Response) *RentalResponse {
	return &RentalResponse{
		ID:              resp.ID,
		RenterID:        resp.RenterID,
		AssetID:         resp.AssetID,
		PlanDays:        resp.PlanDays,
		StartDate:       resp.StartDate.Format(time.RFC3339),
		ExpectedEndDate: resp.ExpectedEndDate.Format(time.RFC3339),
		EndDate:         resp.EndDate.Format(time.RFC3339),
		DailyRate:       models.Money(resp.DailyRate),
		TotalAmount:     models.Money(resp.TotalAmount),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
