package get_rental

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
