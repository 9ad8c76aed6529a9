package create_rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание аренды
type Request struct {
	RenterID  uuid.UUID   // ID арендатора
	AssetID   uuid.UUID   // ID транспортного средства
	Plan      domain.Plan // Тарифный план (количество дней)
	StartDate *time.Time  // Дата начала (опционально, по умолчанию завтра 00:00 UTC)
}

// Response модель ответа с созданной арендой
type Response struct {
	ID              uuid.UUID
	RenterID        uuid.UUID
	AssetID         uuid.UUID
	PlanDays        int
	StartDate       time.Time
	ExpectedEndDate time.Time
	EndDate         time.Time
	DailyRate       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func newResponse(r *domain.Rental) *Response {
	return &Response{
		ID:              r.ID,
		RenterID:        r.RenterID,
		AssetID:         r.AssetID,
		PlanDays:        r.Plan.Days(),
		StartDate:       r.StartDate,
		ExpectedEndDate: r.ExpectedEndDate,
		EndDate:         r.EndDate,
		DailyRate:       r.DailyRate,
		TotalAmount:     r.TotalAmount,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
