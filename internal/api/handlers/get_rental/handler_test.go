package get_rental

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetByID(ctx context.Context, id uuid.UUID) (*models.RentalResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RentalResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rentals/{rentalId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetByID", mock.Anything, id).Return(&models.RentalResponse{ID: id, Status: "active", TotalAmount: "210.00"}, nil)

		rec := serve(svc, "/api/v1/rentals/"+id.String())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), id.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetByID", mock.Anything, id).Return(nil, rentals.ErrRentalNotFound)

		assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/rentals/"+id.String()).Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetByID", mock.Anything, id).Return(nil, errors.New("db down"))

		assert.Equal(t, http.StatusInternalServerError, serve(svc, "/api/v1/rentals/"+id.String()).Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(MockService)

		assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/rentals/123").Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
