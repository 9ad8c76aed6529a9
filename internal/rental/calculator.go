package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Calculation is the fee breakdown of a return on a given date.
// At most one of FineAmount and AdditionalDaysAmount is set.
type Calculation struct {
	DaysUsed             int
	DaysRemaining        int
	AdditionalDays       int
	FineAmount           *decimal.Decimal
	AdditionalDaysAmount *decimal.Decimal
	TotalAmount          decimal.Decimal
}

// IsEarlyReturn returns true if the calculation carries an early-return fine
func (c Calculation) IsEarlyReturn() bool {
	return c.FineAmount != nil
}

// IsLateReturn returns true if the calculation carries a late-return surcharge
func (c Calculation) IsLateReturn() bool {
	return c.AdditionalDaysAmount != nil
}

// Calculate computes the fees of returning an asset on returnDate.
//
// Early return: fine = unused days * daily rate * finePercent.
// Late return: surcharge = extra days * LateFeePerDay.
// Total is always daily rate * days used plus whichever fee applies.
//
// A returnDate before startDate gives negative DaysUsed; the arithmetic is applied as is.
func Calculate(
	startDate time.Time,
	expectedEndDate time.Time,
	dailyRate decimal.Decimal,
	finePercent decimal.Decimal,
	returnDate time.Time,
) Calculation {
	expectedDays := wholeDaysBetween(startDate, expectedEndDate)
	daysUsed := wholeDaysBetween(startDate, returnDate)

	calc := Calculation{
		DaysUsed:       daysUsed,
		DaysRemaining:  max(0, expectedDays-daysUsed),
		AdditionalDays: max(0, daysUsed-expectedDays),
	}

	switch {
	case daysUsed < expectedDays:
		unusedDays := decimal.NewFromInt(int64(expectedDays - daysUsed))
		fine := unusedDays.Mul(dailyRate).Mul(finePercent)
		calc.FineAmount = &fine

	case daysUsed > expectedDays:
		surcharge := decimal.NewFromInt(int64(calc.AdditionalDays)).Mul(domain.LateFeePerDay)
		calc.AdditionalDaysAmount = &surcharge
	}

	total := dailyRate.Mul(decimal.NewFromInt(int64(daysUsed)))
	if calc.FineAmount != nil {
		total = total.Add(*calc.FineAmount)
	}
	if calc.AdditionalDaysAmount != nil {
		total = total.Add(*calc.AdditionalDaysAmount)
	}
	calc.TotalAmount = total

	return calc
}

// wholeDaysBetween returns the number of complete 24h periods from a to b, truncated toward zero
func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (domain.HoursPerDay * time.Hour))
}
