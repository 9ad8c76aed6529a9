package check_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CheckAvailability(ctx context.Context, assetID uuid.UUID, plan domain.Plan, startDate time.Time) (*models.AvailabilityResponse, error) {
	args := m.Called(ctx, assetID, plan, startDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/assets/{assetId}/availability", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := new(MockService)
	assetID := uuid.New()
	start := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	svc.On("CheckAvailability", mock.Anything, assetID, domain.PlanSevenDays, start).
		Return(&models.AvailabilityResponse{AssetID: assetID, PlanDays: 7, Available: true, Conflicts: []models.WindowResponse{}}, nil)

	rec := serve(svc, "/api/v1/assets/"+assetID.String()+"/availability?plan=7&startDate=2025-10-15")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	assetID := uuid.New().String()

	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"invalid asset id", "/api/v1/assets/42/availability?plan=7&startDate=2025-10-15", nil, http.StatusBadRequest},
		{"missing plan", "/api/v1/assets/" + assetID + "/availability?startDate=2025-10-15", nil, http.StatusBadRequest},
		{"invalid date", "/api/v1/assets/" + assetID + "/availability?plan=7&startDate=soon", nil, http.StatusBadRequest},
		{"unknown plan", "/api/v1/assets/" + assetID + "/availability?plan=8&startDate=2025-10-15", domain.ErrInvalidPlan, http.StatusBadRequest},
		{"service failure", "/api/v1/assets/" + assetID + "/availability?plan=7&startDate=2025-10-15", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.err != nil {
				svc.On("CheckAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.target)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
