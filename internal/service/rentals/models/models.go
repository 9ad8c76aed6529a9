package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rental"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// GetRenterRentalsRequest запрос на получение аренд пользователя
type GetRenterRentalsRequest struct {
	RenterID uuid.UUID `json:"renterId"`
	Status   *string   `json:"status,omitempty"`
}

// Response модели

// RentalResponse ответ с данными аренды. Суммы передаются строками с двумя знаками.
type RentalResponse struct {
	ID                   uuid.UUID `json:"id"`
	RenterID             uuid.UUID `json:"renterId"`
	AssetID              uuid.UUID `json:"assetId"`
	PlanDays             int       `json:"planDays"`
	StartDate            string    `json:"startDate"`       // RFC 3339
	ExpectedEndDate      string    `json:"expectedEndDate"` // RFC 3339
	EndDate              string    `json:"endDate"`         // RFC 3339
	DailyRate            string    `json:"dailyRate"`
	TotalAmount          string    `json:"totalAmount"`
	FineAmount           *string   `json:"fineAmount,omitempty"`
	AdditionalDaysAmount *string   `json:"additionalDaysAmount,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// RentalListResponse ответ со списком аренд
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// ReturnPreviewResponse предварительный расчёт возврата
type ReturnPreviewResponse struct {
	RentalID             uuid.UUID `json:"rentalId"`
	ReturnDate           string    `json:"returnDate"`
	DaysUsed             int       `json:"daysUsed"`
	DaysRemaining        int       `json:"daysRemaining"`
	AdditionalDays       int       `json:"additionalDays"`
	FineAmount           *string   `json:"fineAmount,omitempty"`
	AdditionalDaysAmount *string   `json:"additionalDaysAmount,omitempty"`
	TotalAmount          string    `json:"totalAmount"`
}

// PlanResponse тарифный план
type PlanResponse struct {
	Days        int    `json:"days"`
	DailyRate   string `json:"dailyRate"`
	FinePercent string `json:"finePercent"`
	BaseAmount  string `json:"baseAmount"`
}

// AvailabilityResponse доступность транспорта на окно плана
type AvailabilityResponse struct {
	AssetID          uuid.UUID        `json:"assetId"`
	PlanDays         int              `json:"planDays"`
	StartDate        string           `json:"startDate"`
	EndDate          string           `json:"endDate"`
	Available        bool             `json:"available"`
	HasActiveRentals bool             `json:"hasActiveRentals"`
	Conflicts        []WindowResponse `json:"conflicts"`
}

// WindowResponse занятое окно [start, end)
type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Методы конвертации

// Money форматирует сумму с двумя знаками после запятой
func Money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyScale)
}

// MoneyPtr форматирует необязательную сумму
func MoneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.Rental) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:                   r.ID,
		RenterID:             r.RenterID,
		AssetID:              r.AssetID,
		PlanDays:             r.Plan.Days(),
		StartDate:            r.StartDate.Format(time.RFC3339),
		ExpectedEndDate:      r.ExpectedEndDate.Format(time.RFC3339),
		EndDate:              r.EndDate.Format(time.RFC3339),
		DailyRate:            Money(r.DailyRate),
		TotalAmount:          Money(r.TotalAmount),
		FineAmount:           MoneyPtr(r.FineAmount),
		AdditionalDaysAmount: MoneyPtr(r.AdditionalDaysAmount),
		Status:               string(r.Status),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain моделей в DTO
func FromDomainRentalList(rentals []*domain.Rental) *RentalListResponse {
	resp := &RentalListResponse{
		Rentals: make([]RentalResponse, 0, len(rentals)),
	}

	for _, r := range rentals {
		if rentalResp := FromDomainRental(r); rentalResp != nil {
			resp.Rentals = append(resp.Rentals, *rentalResp)
		}
	}

	return resp
}

// FromCalculation конвертирует расчёт возврата в DTO
func FromCalculation(rentalID uuid.UUID, returnDate time.Time, calc rental.Calculation) *ReturnPreviewResponse {
	return &ReturnPreviewResponse{
		RentalID:             rentalID,
		ReturnDate:           returnDate.Format(time.RFC3339),
		DaysUsed:             calc.DaysUsed,
		DaysRemaining:        calc.DaysRemaining,
		AdditionalDays:       calc.AdditionalDays,
		FineAmount:           MoneyPtr(calc.FineAmount),
		AdditionalDaysAmount: MoneyPtr(calc.AdditionalDaysAmount),
		TotalAmount:          Money(calc.TotalAmount),
	}
}

// FromRate конвертирует тариф в DTO
func FromRate(rate domain.Rate) PlanResponse {
	return PlanResponse{
		Days:        rate.DurationDays,
		DailyRate:   Money(rate.DailyRate),
		FinePercent: rate.FinePercent.StringFixed(2),
		BaseAmount:  Money(rate.BaseAmount()),
	}
}

// FromWindows конвертирует окна в DTO
func FromWindows(windows []domain.Window) []WindowResponse {
	resp := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		resp = append(resp, WindowResponse{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
		})
	}
	return resp
}

// ToDomainRentalStatus конвертирует строку в domain.RentalStatus с валидацией
func ToDomainRentalStatus(status string) (domain.RentalStatus, error) {
	s := domain.RentalStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
