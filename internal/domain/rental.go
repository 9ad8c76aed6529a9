package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	StatusActive    RentalStatus = "active"
	StatusCompleted RentalStatus = "completed"
)

// Valid returns true if the status is a known rental status
func (s RentalStatus) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// Rental represents a booking of an asset by a renter.
// Values are treated as immutable: engine operations return updated copies.
type Rental struct {
	ID       uuid.UUID
	RenterID uuid.UUID // внешняя ссылка, движок её не разыменовывает
	AssetID  uuid.UUID
	Plan     Plan

	StartDate       time.Time
	ExpectedEndDate time.Time // StartDate + длительность плана, не меняется
	EndDate         time.Time // Равна ExpectedEndDate до завершения, затем фактическая дата возврата

	DailyRate            decimal.Decimal
	TotalAmount          decimal.Decimal
	FineAmount           *decimal.Decimal
	AdditionalDaysAmount *decimal.Decimal

	Status RentalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the rental still blocks its asset
func (r *Rental) IsActive() bool {
	return r.Status == StatusActive
}

// IsCompleted returns true if the asset has been returned
func (r *Rental) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// Window returns the reserved interval [StartDate, ExpectedEndDate)
func (r *Rental) Window() Window {
	return Window{Start: r.StartDate, End: r.ExpectedEndDate}
}

// IsOverdue returns true if an active rental is past its expected end date
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.IsActive() && now.After(r.ExpectedEndDate)
}

// Window is a half-open time interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows share any instant.
// Windows touching at a boundary do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// RenterRentalsFilter фильтр для получения аренд пользователя
type RenterRentalsFilter struct {
	RenterID uuid.UUID     // Обязательный параметр
	Status   *RentalStatus // Фильтр по статусу (опционально)
}
