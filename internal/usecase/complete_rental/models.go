package complete_rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rental"
)

// Виды возврата для метрик и ответа
const (
	ReturnKindEarly  = "early"
	ReturnKindOnTime = "on_time"
	ReturnKindLate   = "late"
)

// Request модель запроса на завершение аренды
type Request struct {
	RentalID   uuid.UUID
	ReturnDate *time.Time // Фактическая дата возврата (опционально, по умолчанию текущее время)
}

// Response модель ответа с завершённой арендой
type Response struct {
	ID                   uuid.UUID
	RenterID             uuid.UUID
	AssetID              uuid.UUID
	PlanDays             int
	StartDate            time.Time
	ExpectedEndDate      time.Time
	EndDate              time.Time
	DailyRate            decimal.Decimal
	TotalAmount          decimal.Decimal
	FineAmount           *decimal.Decimal
	AdditionalDaysAmount *decimal.Decimal
	Status               string
	ReturnKind           string
	DaysUsed             int
	DaysRemaining        int
	AdditionalDays       int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func newResponse(r domain.Rental, calc rental.Calculation) *Response {
	return &Response{
		ID:                   r.ID,
		RenterID:             r.RenterID,
		AssetID:              r.AssetID,
		PlanDays:             r.Plan.Days(),
		StartDate:            r.StartDate,
		ExpectedEndDate:      r.ExpectedEndDate,
		EndDate:              r.EndDate,
		DailyRate:            r.DailyRate,
		TotalAmount:          r.TotalAmount,
		FineAmount:           r.FineAmount,
		AdditionalDaysAmount: r.AdditionalDaysAmount,
		Status:               string(r.Status),
		ReturnKind:           returnKind(calc),
		DaysUsed:             calc.DaysUsed,
		DaysRemaining:        calc.DaysRemaining,
		AdditionalDays:       calc.AdditionalDays,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func returnKind(calc rental.Calculation) string {
	switch {
	case calc.IsEarlyReturn():
		return ReturnKindEarly
	case calc.IsLateReturn():
		return ReturnKindLate
	default:
		return ReturnKindOnTime
	}
}
