package complete_rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("complete_rental: rental not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_rental: invalid input data")

	// ErrConcurrentUpdate возвращается, когда транзакцию вытеснило конкурентное изменение аренды
	ErrConcurrentUpdate = errors.New("complete_rental: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_rental: internal error")
)
