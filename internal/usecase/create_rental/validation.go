package create_rental

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RenterID == uuid.Nil {
		return fmt.Errorf("%w: renterID is required", ErrInvalidInput)
	}

	if req.AssetID == uuid.Nil {
		return fmt.Errorf("%w: assetID is required", ErrInvalidInput)
	}

	// План проверяем до обращений во внешние сервисы
	if !req.Plan.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPlan, int(req.Plan))
	}

	return nil
}

// resolveStartDate возвращает дату начала аренды.
// Без явной даты аренда начинается завтра в 00:00 UTC.
func resolveStartDate(requested *time.Time, now time.Time) (time.Time, error) {
	today := truncateToDay(now)

	if requested == nil {
		return today.AddDate(0, 0, 1), nil
	}

	start := requested.UTC()
	if truncateToDay(start).Before(today) {
		return time.Time{}, ErrInvalidStartDate
	}

	maxDate := today.AddDate(0, 0, domain.MaxStartDateAdvanceDays)
	if start.After(maxDate) {
		return time.Time{}, fmt.Errorf("%w: can only start %d days in advance", ErrStartDateTooFar, domain.MaxStartDateAdvanceDays)
	}

	return start, nil
}

// truncateToDay обнуляет время, оставляя дату в UTC
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
