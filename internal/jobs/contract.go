package jobs

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetOverdue(ctx context.Context, now time.Time) ([]*domain.Rental, error)
}

// Metrics интерфейс метрик фоновых задач
type Metrics interface {
	SetOverdue(count int, surcharge decimal.Decimal)
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
