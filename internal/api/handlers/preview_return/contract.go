package preview_return

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type ReturnService interface {
	PreviewReturn(ctx context.Context, id uuid.UUID, returnDate *time.Time) (*models.ReturnPreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
