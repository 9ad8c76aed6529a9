package rentals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис чтения аренд, расчёта возврата и тарифов
type Service struct {
	rentalRepo   RentalRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(rentalRepo RentalRepository, logger Logger) *Service {
	return &Service{
		rentalRepo:   rentalRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает аренду по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RentalResponse, error) {
	r, err := s.getRental(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRental(r), nil
}

// GetRenterRentals получает историю аренд пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetRenterRentals(ctx context.Context, req *models.GetRenterRentalsRequest) (*models.RentalListResponse, error) {
	s.logger.Info("GetRenterRentals: fetching rentals for renter=%s, status=%v", req.RenterID, req.Status)

	filter := domain.RenterRentalsFilter{RenterID: req.RenterID}
	if req.Status != nil {
		status, err := models.ToDomainRentalStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRenterRentals: invalid status=%s for renter=%s", *req.Status, req.RenterID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	rentals, err := s.rentalRepo.GetByRenterID(ctx, filter)
	if err != nil {
		s.logger.Error("GetRenterRentals: repository error for renter=%s: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterRentals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterRentals: successfully fetched %d rentals for renter=%s", len(rentals), req.RenterID)
	return models.FromDomainRentalList(rentals), nil
}

// PreviewReturn рассчитывает стоимость возврата на дату без изменения аренды.
// Без даты расчёт ведётся на текущий момент.
func (s *Service) PreviewReturn(ctx context.Context, id uuid.UUID, returnDate *time.Time) (*models.ReturnPreviewResponse, error) {
	r, err := s.getRental(ctx, "PreviewReturn", id)
	if err != nil {
		return nil, err
	}

	at := s.timeProvider.Now()
	if returnDate != nil {
		at = returnDate.UTC()
	}

	calc, err := rental.PreviewReturn(r, at)
	if err != nil {
		s.logger.Error("PreviewReturn: failed to calculate return for rental id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: PreviewReturn - calculation error: %v", ErrInternal, err)
	}

	s.logger.Info("PreviewReturn: rental id=%s, return_date=%s, total=%s",
		id, at.Format(domain.DateFormat), models.Money(calc.TotalAmount))
	return models.FromCalculation(id, at, calc), nil
}

// ListPlans возвращает все тарифные планы по возрастанию длительности
func (s *Service) ListPlans() []models.PlanResponse {
	plans := domain.Plans()
	resp := make([]models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		rate, err := rental.Quote(plan)
		if err != nil {
			continue
		}
		resp = append(resp, models.FromRate(rate))
	}
	return resp
}

// Quote возвращает тариф плана
func (s *Service) Quote(plan domain.Plan) (*models.PlanResponse, error) {
	rate, err := rental.Quote(plan)
	if err != nil {
		return nil, err
	}

	resp := models.FromRate(rate)
	return &resp, nil
}

// CheckAvailability проверяет, свободен ли транспорт на окно плана, начинающееся в startDate.
// Результат носит справочный характер: окончательная проверка выполняется при создании аренды.
func (s *Service) CheckAvailability(ctx context.Context, assetID uuid.UUID, plan domain.Plan, startDate time.Time) (*models.AvailabilityResponse, error) {
	rate, err := rental.Quote(plan)
	if err != nil {
		return nil, err
	}

	start := startDate.UTC()
	end := rental.ExpectedEndDate(start, rate)

	windows, err := s.rentalRepo.GetActiveWindowsForAsset(ctx, assetID)
	if err != nil {
		s.logger.Error("CheckAvailability: repository error for asset=%s: %v", assetID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	hasActive, err := s.rentalRepo.HasActiveRentals(ctx, assetID)
	if err != nil {
		s.logger.Error("CheckAvailability: repository error for asset=%s: %v", assetID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	conflicts := rental.Conflicts(start, end, windows)

	s.logger.Info("CheckAvailability: asset=%s, window=[%s, %s), conflicts=%d",
		assetID, start.Format(domain.DateFormat), end.Format(domain.DateFormat), len(conflicts))

	return &models.AvailabilityResponse{
		AssetID:          assetID,
		PlanDays:         rate.DurationDays,
		StartDate:        start.Format(time.RFC3339),
		EndDate:          end.Format(time.RFC3339),
		Available:        rental.IsFree(start, end, windows),
		HasActiveRentals: hasActive,
		Conflicts:        models.FromWindows(conflicts),
	}, nil
}

func (s *Service) getRental(ctx context.Context, op string, id uuid.UUID) (*domain.Rental, error) {
	r, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("%s: rental id=%s not found", op, id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("%s: repository error for rental id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return r, nil
}
