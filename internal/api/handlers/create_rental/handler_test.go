package create_rental

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createRental.Request) (*createRental.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createRental.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(uc *MockUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(MockUseCase)
	renterID, assetID := uuid.New(), uuid.New()
	start := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createRental.Request) bool {
		return req.RenterID == renterID && req.AssetID == assetID &&
			req.Plan == domain.PlanSevenDays && req.StartDate != nil && req.StartDate.Equal(start)
	})).Return(&createRental.Response{
		ID:              uuid.New(),
		RenterID:        renterID,
		AssetID:         assetID,
		PlanDays:        7,
		StartDate:       start,
		ExpectedEndDate: start.AddDate(0, 0, 7),
		EndDate:         start.AddDate(0, 0, 7),
		DailyRate:       decimal.RequireFromString("30"),
		TotalAmount:     decimal.RequireFromString("210"),
		Status:          string(domain.StatusActive),
	}, nil)

	body := fmt.Sprintf(`{"renterId":%q,"assetId":%q,"plan":7,"startDate":"2025-10-15"}`, renterID, assetID)
	rec := post(uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalAmount":"210.00"`)
	assert.Contains(t, rec.Body.String(), `"expectedEndDate":"2025-10-22T00:00:00Z"`)
	uc.AssertExpectations(t)
}

func TestHandle_DefaultStartDate(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createRental.Request) bool {
		return req.StartDate == nil
	})).Return(&createRental.Response{ID: uuid.New()}, nil)

	rec := post(uc, fmt.Sprintf(`{"renterId":%q,"assetId":%q,"plan":30}`, uuid.New(), uuid.New()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequestBody(t *testing.T) {
	uc := new(MockUseCase)

	assert.Equal(t, http.StatusBadRequest, post(uc, `[1,2]`).Code)
	assert.Equal(t, http.StatusBadRequest, post(uc, `{"plan":7,"startDate":"15/10/2025"}`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: renterID is required", createRental.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidPlan, http.StatusBadRequest},
		{createRental.ErrInvalidStartDate, http.StatusBadRequest},
		{createRental.ErrStartDateTooFar, http.StatusBadRequest},
		{createRental.ErrRenterNotFound, http.StatusNotFound},
		{createRental.ErrAssetNotFound, http.StatusNotFound},
		{createRental.ErrRenterNotEligible, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: asset=x", domain.ErrAssetUnavailable), http.StatusConflict},
		{createRental.ErrConcurrentUpdate, http.StatusConflict},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(uc, fmt.Sprintf(`{"renterId":%q,"assetId":%q,"plan":7}`, uuid.New(), uuid.New()))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
