package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

const tableRentals = "rentals"

var rentalColumns = []string{
	"id",
	"renter_id",
	"asset_id",
	"plan_days",
	"start_date",
	"expected_end_date",
	"end_date",
	"daily_rate",
	"total_amount",
	"fine_amount",
	"additional_days_amount",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с арендами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую аренду.
// Пересечение окон по одному транспортному средству отсекается ограничением rentals_no_overlap
// и возвращается как ErrAssetUnavailable.
func (r *Repository) Create(ctx context.Context, rental domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableRentals).
		Columns(rentalColumns...).
		Values(
			rental.ID,
			rental.RenterID,
			rental.AssetID,
			int(rental.Plan),
			rental.StartDate,
			rental.ExpectedEndDate,
			rental.EndDate,
			rental.DailyRate,
			rental.TotalAmount,
			nullDecimal(rental.FineAmount),
			nullDecimal(rental.AdditionalDaysAmount),
			string(rental.Status),
			rental.CreatedAt,
			rental.UpdatedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rental.CreatedAt, &rental.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", mapPQError(err, ErrExecQuery), err)
	}

	return &rental, nil
}

// GetByID получает аренду по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From(tableRentals).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := scanRental(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", mapPQError(err, ErrScanRow), err)
	}

	return rental, nil
}

// GetByRenterID получает аренды пользователя, новые первыми.
// Опционально фильтрует по статусу.
func (r *Repository) GetByRenterID(ctx context.Context, filter domain.RenterRentalsFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From(tableRentals).
		Where(squirrel.Eq{"renter_id": filter.RenterID}).
		OrderBy("start_date DESC", "created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRenterID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRentals(ctx, executor, "GetByRenterID", query, args)
}

// GetActiveWindowsForAsset возвращает окна [start_date, expected_end_date) активных аренд транспорта.
// Внутри транзакции строки блокируются, чтобы конкурентное создание аренды ждало текущую.
func (r *Repository) GetActiveWindowsForAsset(ctx context.Context, assetID uuid.UUID) ([]domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_date", "expected_end_date").
		From(tableRentals).
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		OrderBy("start_date")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWindowsForAsset - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWindowsForAsset - execute select: %v", mapPQError(err, ErrExecQuery), err)
	}
	defer rows.Close()

	windows := make([]domain.Window, 0)
	for rows.Next() {
		var w domain.Window
		if err := rows.Scan(&w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("%w: GetActiveWindowsForAsset - scan window: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveWindowsForAsset - rows iteration: %v", ErrExecQuery, err)
	}

	return windows, nil
}

// Complete сохраняет итог завершения аренды.
// Обновление выполняется только для активной аренды, иначе ErrRentalNotActive.
func (r *Repository) Complete(ctx context.Context, rental domain.Rental) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableRentals).
		Set("end_date", rental.EndDate).
		Set("total_amount", rental.TotalAmount).
		Set("fine_amount", nullDecimal(rental.FineAmount)).
		Set("additional_days_amount", nullDecimal(rental.AdditionalDaysAmount)).
		Set("status", string(rental.Status)).
		Set("updated_at", rental.UpdatedAt).
		Where(squirrel.Eq{"id": rental.ID}).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", mapPQError(err, ErrExecQuery), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRentalNotActive
	}

	return nil
}

// HasActiveRentals проверяет, есть ли у транспорта активные аренды
func (r *Repository) HasActiveRentals(ctx context.Context, assetID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableRentals).
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasActiveRentals - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveRentals - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetOverdue возвращает активные аренды, ожидаемая дата окончания которых уже прошла
func (r *Repository) GetOverdue(ctx context.Context, now time.Time) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From(tableRentals).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		Where(squirrel.Lt{"expected_end_date": now}).
		OrderBy("expected_end_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverdue - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRentals(ctx, executor, "GetOverdue", query, args)
}

func (r *Repository) queryRentals(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Rental, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rentals := make([]*domain.Rental, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan rental: %v", ErrScanRow, op, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrExecQuery, op, err)
	}

	return rentals, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var (
		rental               domain.Rental
		planDays             int
		status               string
		fineAmount           decimal.NullDecimal
		additionalDaysAmount decimal.NullDecimal
	)

	err := row.Scan(
		&rental.ID,
		&rental.RenterID,
		&rental.AssetID,
		&planDays,
		&rental.StartDate,
		&rental.ExpectedEndDate,
		&rental.EndDate,
		&rental.DailyRate,
		&rental.TotalAmount,
		&fineAmount,
		&additionalDaysAmount,
		&status,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.Plan = domain.Plan(planDays)
	rental.Status = domain.RentalStatus(status)
	if fineAmount.Valid {
		rental.FineAmount = ptr.Ptr(fineAmount.Decimal)
	}
	if additionalDaysAmount.Valid {
		rental.AdditionalDaysAmount = ptr.Ptr(additionalDaysAmount.Decimal)
	}

	return &rental, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
