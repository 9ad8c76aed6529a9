package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrNilRental возвращается при вызове с nil вместо аренды (нарушение контракта вызывающей стороной,
	// не бизнес-ошибка)
	ErrNilRental = errors.New("rental: nil rental passed to engine")
)

// UnavailableError is returned by Create when the requested window overlaps active rentals.
// It matches domain.ErrAssetUnavailable with errors.Is.
type UnavailableError struct {
	AssetID   uuid.UUID
	Window    domain.Window
	Conflicts []domain.Window
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: asset=%s, window=[%s, %s), conflicts=%d",
		domain.ErrAssetUnavailable, e.AssetID,
		e.Window.Start.Format(time.RFC3339), e.Window.End.Format(time.RFC3339), len(e.Conflicts))
}

func (e *UnavailableError) Unwrap() error {
	return domain.ErrAssetUnavailable
}
