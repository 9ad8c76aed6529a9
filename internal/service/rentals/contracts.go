package rentals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	GetByRenterID(ctx context.Context, filter domain.RenterRentalsFilter) ([]*domain.Rental, error)
	GetActiveWindowsForAsset(ctx context.Context, assetID uuid.UUID) ([]domain.Window, error)
	HasActiveRentals(ctx context.Context, assetID uuid.UUID) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
