package get_renter_rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	GetRenterRentals(ctx context.Context, req *models.GetRenterRentalsRequest) (*models.RentalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
