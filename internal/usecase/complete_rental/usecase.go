package complete_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/rental"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// UseCase use case для завершения аренды (возврата транспорта)
type UseCase struct {
	rentalRepo   RentalRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:   rentalRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute завершает аренду с расчётом штрафа за ранний возврат или доплаты за просрочку.
// Аренда читается с блокировкой и обновляется только если всё ещё активна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RentalID == uuid.Nil {
		return nil, fmt.Errorf("%w: rentalID is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	returnDate := now
	if req.ReturnDate != nil {
		returnDate = req.ReturnDate.UTC()
	}

	uc.logger.Info("CompleteRental: rental=%s, return_date=%s", req.RentalID, returnDate.Format(domain.DateFormat))

	var (
		completed domain.Rental
		calc      rental.Calculation
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем аренду с блокировкой (FOR UPDATE)
		current, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				uc.logger.Warn("CompleteRental: rental id=%s not found", req.RentalID)
				return ErrRentalNotFound
			}
			if errors.Is(err, rentalRepo.ErrSerializationFailure) {
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("CompleteRental: failed to get rental id=%s: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// 2. Расчёт итоговой суммы
		completed, calc, err = rental.Settle(*current, returnDate, now)
		if err != nil {
			if errors.Is(err, domain.ErrNotActive) {
				uc.logger.Warn("CompleteRental: %v", err)
				return err
			}
			uc.logger.Error("CompleteRental: failed to calculate return for rental id=%s: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to calculate return: %v", ErrInternal, err)
		}

		// 3. Сохраняем, только если аренда всё ещё активна
		if err := uc.rentalRepo.Complete(txCtx, completed); err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotActive) {
				uc.logger.Warn("CompleteRental: rental id=%s completed concurrently", req.RentalID)
				return fmt.Errorf("%w: %v", domain.ErrNotActive, err)
			}
			if errors.Is(err, rentalRepo.ErrSerializationFailure) {
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("CompleteRental: failed to save rental id=%s: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to save rental: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrSerializationFailure):
			uc.logger.Warn("CompleteRental: serialization failure for rental id=%s: %v", req.RentalID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		case errors.Is(err, ErrConcurrentUpdate):
			uc.logger.Warn("CompleteRental: serialization failure for rental id=%s: %v", req.RentalID, err)
			return nil, err
		case errors.Is(err, ErrRentalNotFound), errors.Is(err, domain.ErrNotActive), errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("CompleteRental: transaction failed for rental id=%s: %v", req.RentalID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	resp := newResponse(completed, calc)
	uc.metrics.ObserveRentalCompleted(resp.ReturnKind, completed.FineAmount, completed.AdditionalDaysAmount)

	uc.logger.Info("CompleteRental: rental id=%s completed, kind=%s, days_used=%d, total=%s",
		completed.ID, resp.ReturnKind, calc.DaysUsed, completed.TotalAmount.StringFixed(domain.MoneyScale))

	return resp, nil
}
