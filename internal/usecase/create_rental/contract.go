package create_rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-RentalService/internal/integrations/renterservice"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental domain.Rental) (*domain.Rental, error)
	GetActiveWindowsForAsset(ctx context.Context, assetID uuid.UUID) ([]domain.Window, error)
}

// RenterServiceClient интерфейс клиента для RenterService
type RenterServiceClient interface {
	GetRenter(ctx context.Context, renterID uuid.UUID) (*renterservice.Renter, error)
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetAsset(ctx context.Context, assetID uuid.UUID) (*fleetservice.Asset, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики создания аренды
type Metrics interface {
	IncRentalCreated(planDays int)
	IncRentalConflict()
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
