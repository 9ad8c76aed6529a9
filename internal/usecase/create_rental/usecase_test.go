package create_rental

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-RentalService/internal/integrations/renterservice"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

var now = time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	repo    *MockRentalRepo
	renters *MockRenterClient
	fleet   *MockFleetClient
	metrics *MockMetrics
	tx      *fakeTxManager
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(MockRentalRepo),
		renters: new(MockRenterClient),
		fleet:   new(MockFleetClient),
		metrics: new(MockMetrics),
		tx:      &fakeTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.renters, f.fleet, f.tx, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedClock{now: now}
	return f
}

func (f *fixture) eligibleRenter(id uuid.UUID) {
	f.renters.On("GetRenter", mock.Anything, id).
		Return(&renterservice.Renter{ID: id, LicenseType: renterservice.LicenseA, IsActive: true}, nil)
}

func (f *fixture) existingAsset(id uuid.UUID) {
	f.fleet.On("GetAsset", mock.Anything, id).Return(&fleetservice.Asset{ID: id}, nil)
}

func newRequest(plan domain.Plan) *Request {
	return &Request{RenterID: uuid.New(), AssetID: uuid.New(), Plan: plan}
}

func TestExecute_CreatesRentalStartingTomorrow(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).Return([]domain.Window{}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("domain.Rental")).
		Return(func(_ context.Context, r domain.Rental) *domain.Rental { return &r }, nil)
	f.metrics.On("IncRentalCreated", 7).Return()

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	tomorrow := time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, tomorrow, resp.StartDate)
	assert.Equal(t, tomorrow.AddDate(0, 0, 7), resp.ExpectedEndDate)
	assert.Equal(t, resp.ExpectedEndDate, resp.EndDate)
	assert.Equal(t, "210.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 7, resp.PlanDays)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, now, resp.CreatedAt)
	f.repo.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestExecute_ExplicitStartDate(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanFifteenDays)
	start := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	req.StartDate = &start
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).
		Return([]domain.Window{{Start: start.AddDate(0, 0, -7), End: start}}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("domain.Rental")).
		Return(func(_ context.Context, r domain.Rental) *domain.Rental { return &r }, nil)
	f.metrics.On("IncRentalCreated", 15).Return()

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, start, resp.StartDate)
	assert.Equal(t, "420.00", resp.TotalAmount.StringFixed(2))
}

func TestExecute_StartDateValidation(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	tooFar := now.AddDate(0, 0, domain.MaxStartDateAdvanceDays+1)

	tests := []struct {
		name    string
		start   time.Time
		wantErr error
	}{
		{"in the past", yesterday, ErrInvalidStartDate},
		{"too far ahead", tooFar, ErrStartDateTooFar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := newRequest(domain.PlanSevenDays)
			req.StartDate = &tt.start

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			f.renters.AssertNotCalled(t, "GetRenter", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{AssetID: uuid.New(), Plan: domain.PlanSevenDays})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), newRequest(domain.Plan(10)))
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	f.renters.AssertNotCalled(t, "GetRenter", mock.Anything, mock.Anything)
}

func TestExecute_RenterChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		req := newRequest(domain.PlanSevenDays)
		f.renters.On("GetRenter", mock.Anything, req.RenterID).Return(nil, renterservice.ErrRenterNotFound)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrRenterNotFound)
	})

	t.Run("wrong license", func(t *testing.T) {
		f := newFixture()
		req := newRequest(domain.PlanSevenDays)
		f.renters.On("GetRenter", mock.Anything, req.RenterID).
			Return(&renterservice.Renter{ID: req.RenterID, LicenseType: renterservice.LicenseB, IsActive: true}, nil)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrRenterNotEligible)
		f.fleet.AssertNotCalled(t, "GetAsset", mock.Anything, mock.Anything)
	})

	t.Run("service down", func(t *testing.T) {
		f := newFixture()
		req := newRequest(domain.PlanSevenDays)
		f.renters.On("GetRenter", mock.Anything, req.RenterID).Return(nil, renterservice.ErrInternal)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_AssetNotFound(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.fleet.On("GetAsset", mock.Anything, req.AssetID).Return(nil, fleetservice.ErrAssetNotFound)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAssetNotFound)
	f.repo.AssertNotCalled(t, "GetActiveWindowsForAsset", mock.Anything, mock.Anything)
}

func TestExecute_AssetAlreadyRented(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	tomorrow := time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).
		Return([]domain.Window{{Start: tomorrow.AddDate(0, 0, 3), End: tomorrow.AddDate(0, 0, 10)}}, nil)
	f.metrics.On("IncRentalConflict").Return()

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestExecute_ConcurrentInsertHitsExclusionConstraint(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).Return([]domain.Window{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, rentalRepo.ErrAssetUnavailable)
	f.metrics.On("IncRentalConflict").Return()

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
}

func TestExecute_SerializationFailureOnCommit(t *testing.T) {
	f := newFixture()
	f.tx.err = txmanager.ErrSerializationFailure
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).Return([]domain.Window{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r domain.Rental) *domain.Rental { return &r }, nil)
	f.metrics.On("IncRentalConflict").Return()

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	f.metrics.AssertNotCalled(t, "IncRentalCreated", mock.Anything)
}

func TestExecute_SerializationFailureOnLockingRead(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).
		Return(nil, fmt.Errorf("%w: GetActiveWindowsForAsset - execute select", rentalRepo.ErrSerializationFailure))
	f.metrics.On("IncRentalConflict").Return()

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.False(t, errors.Is(err, ErrInternal))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	f := newFixture()
	req := newRequest(domain.PlanSevenDays)
	f.eligibleRenter(req.RenterID)
	f.existingAsset(req.AssetID)
	f.repo.On("GetActiveWindowsForAsset", mock.Anything, req.AssetID).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInternal)
}
