// Package rental is the rental lifecycle and pricing engine.
//
// Every function here is pure: it takes plain values, returns new values and never touches
// storage, clocks or logs. Eligibility of the renter, existence of the asset and persistence
// of the returned rental are the caller's responsibility. The caller must also read the
// asset's active windows and write the new rental atomically (see create_rental use case),
// otherwise two concurrent callers may both see the asset as free.
package rental

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CreateParams входные данные для создания аренды
type CreateParams struct {
	ID        uuid.UUID // Генерируется вызывающей стороной
	RenterID  uuid.UUID
	AssetID   uuid.UUID
	Plan      domain.Plan
	StartDate time.Time
	Now       time.Time // Проставляется в CreatedAt/UpdatedAt
}

// Quote returns the pricing of a plan so callers can show it before creating a rental
func Quote(plan domain.Plan) (domain.Rate, error) {
	return domain.RateFor(plan)
}

// ExpectedEndDate returns the end of the window reserved by a plan starting at start.
// The duration is counted in whole 24h days, matching the day count of Calculate.
func ExpectedEndDate(start time.Time, rate domain.Rate) time.Time {
	return start.Add(time.Duration(rate.DurationDays) * domain.HoursPerDay * time.Hour)
}

// Create prices a new rental and checks its window against the asset's active windows.
func Create(params CreateParams, activeWindows []domain.Window) (domain.Rental, error) {
	rate, err := domain.RateFor(params.Plan)
	if err != nil {
		return domain.Rental{}, err
	}

	expectedEnd := ExpectedEndDate(params.StartDate, rate)

	if conflicts := Conflicts(params.StartDate, expectedEnd, activeWindows); len(conflicts) > 0 {
		return domain.Rental{}, &UnavailableError{
			AssetID:   params.AssetID,
			Window:    domain.Window{Start: params.StartDate, End: expectedEnd},
			Conflicts: conflicts,
		}
	}

	return domain.Rental{
		ID:              params.ID,
		RenterID:        params.RenterID,
		AssetID:         params.AssetID,
		Plan:            params.Plan,
		StartDate:       params.StartDate,
		ExpectedEndDate: expectedEnd,
		EndDate:         expectedEnd,
		DailyRate:       rate.DailyRate,
		TotalAmount:     rate.BaseAmount(),
		Status:          domain.StatusActive,
		CreatedAt:       params.Now,
		UpdatedAt:       params.Now,
	}, nil
}

// Complete returns the rental transitioned to completed with its final fees.
// The passed value is left untouched.
func Complete(r domain.Rental, returnDate time.Time, now time.Time) (domain.Rental, error) {
	completed, _, err := Settle(r, returnDate, now)
	return completed, err
}

// Settle is Complete that also returns the fee breakdown the completed rental was priced from.
func Settle(r domain.Rental, returnDate time.Time, now time.Time) (domain.Rental, Calculation, error) {
	if !r.IsActive() {
		return domain.Rental{}, Calculation{}, fmt.Errorf("%w: id=%s, status=%s", domain.ErrNotActive, r.ID, r.Status)
	}

	calc, err := PreviewReturn(&r, returnDate)
	if err != nil {
		return domain.Rental{}, Calculation{}, err
	}

	completed := r
	completed.EndDate = returnDate
	completed.FineAmount = calc.FineAmount
	completed.AdditionalDaysAmount = calc.AdditionalDaysAmount
	completed.TotalAmount = calc.TotalAmount
	completed.Status = domain.StatusCompleted
	completed.UpdatedAt = now

	return completed, calc, nil
}

// PreviewReturn computes what completing the rental on returnDate would cost
// without changing the rental.
func PreviewReturn(r *domain.Rental, returnDate time.Time) (Calculation, error) {
	if r == nil {
		return Calculation{}, ErrNilRental
	}

	rate, err := domain.RateFor(r.Plan)
	if err != nil {
		return Calculation{}, err
	}

	return Calculate(r.StartDate, r.ExpectedEndDate, r.DailyRate, rate.FinePercent, returnDate), nil
}
