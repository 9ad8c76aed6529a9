package rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rental.repository: rental not found")

	// ErrRentalNotActive возвращается, когда завершаемая аренда уже не активна
	ErrRentalNotActive = errors.New("rental.repository: rental is not active")

	// ErrAssetUnavailable возвращается при нарушении ограничения rentals_no_overlap
	ErrAssetUnavailable = errors.New("rental.repository: asset already rented for this window")

	// ErrSerializationFailure возвращается, когда транзакцию вытеснила конкурентная
	ErrSerializationFailure = errors.New("rental.repository: serialization failure, retry the operation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rental.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rental.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rental.repository: failed to scan row")
)
