package create_rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-RentalService/internal/integrations/renterservice"
)

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental domain.Rental) (*domain.Rental, error) {
	args := m.Called(ctx, rental)
	if fn, ok := args.Get(0).(func(context.Context, domain.Rental) *domain.Rental); ok {
		return fn(ctx, rental), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) GetActiveWindowsForAsset(ctx context.Context, assetID uuid.UUID) ([]domain.Window, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Window), args.Error(1)
}

type MockRenterClient struct {
	mock.Mock
}

func (m *MockRenterClient) GetRenter(ctx context.Context, renterID uuid.UUID) (*renterservice.Renter, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*renterservice.Renter), args.Error(1)
}

type MockFleetClient struct {
	mock.Mock
}

func (m *MockFleetClient) GetAsset(ctx context.Context, assetID uuid.UUID) (*fleetservice.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleetservice.Asset), args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) IncRentalCreated(planDays int) {
	m.Called(planDays)
}

func (m *MockMetrics) IncRentalConflict() {
	m.Called()
}

// fakeTxManager выполняет функцию без БД; err имитирует сбой фиксации
type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return f.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
