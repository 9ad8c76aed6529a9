package complete_rental

import (
	"context"

	completeRental "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
)

type CompleteRentalUseCase interface {
	Execute(ctx context.Context, req *completeRental.Request) (*completeRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
