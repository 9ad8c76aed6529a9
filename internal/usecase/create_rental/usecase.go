package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	fleetClient "github.com/m04kA/SMC-RentalService/internal/integrations/fleetservice"
	renterClient "github.com/m04kA/SMC-RentalService/internal/integrations/renterservice"
	"github.com/m04kA/SMC-RentalService/internal/rental"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// UseCase use case для создания аренды
type UseCase struct {
	rentalRepo   RentalRepository
	renterClient RenterServiceClient
	fleetClient  FleetServiceClient
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	renterClient RenterServiceClient,
	fleetClient FleetServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:   rentalRepo,
		renterClient: renterClient,
		fleetClient:  fleetClient,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания аренды.
// Чтение активных окон и запись новой аренды выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: renter=%s, asset=%s, plan=%d", req.RenterID, req.AssetID, int(req.Plan))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата начала
	now := uc.timeProvider.Now()
	startDate, err := resolveStartDate(req.StartDate, now)
	if err != nil {
		uc.logger.Warn("CreateRental: start date rejected: %v", err)
		return nil, err
	}

	// 3. Проверяем арендатора
	renter, err := uc.renterClient.GetRenter(ctx, req.RenterID)
	if err != nil {
		if errors.Is(err, renterClient.ErrRenterNotFound) {
			uc.logger.Warn("CreateRental: renter id=%s not found", req.RenterID)
			return nil, ErrRenterNotFound
		}
		uc.logger.Error("CreateRental: failed to get renter id=%s: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: failed to get renter: %v", ErrInternal, err)
	}

	if !renter.CanRent() {
		uc.logger.Warn("CreateRental: renter id=%s is not eligible, license_type=%q, active=%v",
			renter.ID, renter.LicenseType, renter.IsActive)
		return nil, ErrRenterNotEligible
	}

	// 4. Проверяем транспортное средство
	if _, err := uc.fleetClient.GetAsset(ctx, req.AssetID); err != nil {
		if errors.Is(err, fleetClient.ErrAssetNotFound) {
			uc.logger.Warn("CreateRental: asset id=%s not found", req.AssetID)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("CreateRental: failed to get asset id=%s: %v", req.AssetID, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}

	var result *domain.Rental

	// 5. Проверка доступности и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные окна транспорта с блокировкой (FOR UPDATE)
		windows, err := uc.rentalRepo.GetActiveWindowsForAsset(txCtx, req.AssetID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrSerializationFailure) {
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("CreateRental: failed to get active windows for asset id=%s: %v", req.AssetID, err)
			return fmt.Errorf("%w: failed to get active windows: %v", ErrInternal, err)
		}

		// 5.2. Расчёт аренды и проверка пересечений
		created, err := rental.Create(rental.CreateParams{
			ID:        uuid.New(),
			RenterID:  req.RenterID,
			AssetID:   req.AssetID,
			Plan:      req.Plan,
			StartDate: startDate,
			Now:       now,
		}, windows)
		if err != nil {
			var unavailable *rental.UnavailableError
			if errors.As(err, &unavailable) {
				for _, w := range unavailable.Conflicts {
					uc.logger.Warn("CreateRental: asset id=%s already rented for [%s, %s)",
						req.AssetID, w.Start.Format(domain.DateFormat), w.End.Format(domain.DateFormat))
				}
			}
			return err
		}

		// 5.3. Сохраняем аренду
		saved, err := uc.rentalRepo.Create(txCtx, created)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrAssetUnavailable) {
				uc.logger.Warn("CreateRental: asset id=%s taken by a concurrent rental", req.AssetID)
				return fmt.Errorf("%w: %v", domain.ErrAssetUnavailable, err)
			}
			if errors.Is(err, rentalRepo.ErrSerializationFailure) {
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("CreateRental: failed to save rental: %v", err)
			return fmt.Errorf("%w: failed to save rental: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssetUnavailable):
			uc.metrics.IncRentalConflict()
		case errors.Is(err, txmanager.ErrSerializationFailure):
			uc.logger.Warn("CreateRental: serialization failure for asset id=%s: %v", req.AssetID, err)
			uc.metrics.IncRentalConflict()
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		case errors.Is(err, ErrConcurrentUpdate):
			uc.logger.Warn("CreateRental: serialization failure for asset id=%s: %v", req.AssetID, err)
			uc.metrics.IncRentalConflict()
		case errors.Is(err, ErrInternal):
		default:
			uc.logger.Error("CreateRental: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncRentalCreated(result.Plan.Days())
	uc.logger.Info("CreateRental: successfully created rental id=%s, window=[%s, %s), total=%s",
		result.ID, result.StartDate.Format(domain.DateFormat), result.ExpectedEndDate.Format(domain.DateFormat),
		result.TotalAmount.StringFixed(domain.MoneyScale))

	return newResponse(result), nil
}
