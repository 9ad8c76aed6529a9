package create_rental

import "errors"

var (
	// ErrRenterNotFound возвращается, когда арендатор не найден
	ErrRenterNotFound = errors.New("create_rental: renter not found")

	// ErrRenterNotEligible возвращается, когда арендатору нельзя выдать транспорт (нет категории A)
	ErrRenterNotEligible = errors.New("create_rental: renter is not eligible to rent")

	// ErrAssetNotFound возвращается, когда транспортное средство не найдено
	ErrAssetNotFound = errors.New("create_rental: asset not found")

	// ErrInvalidStartDate возвращается, когда дата начала в прошлом
	ErrInvalidStartDate = errors.New("create_rental: start date is in the past")

	// ErrStartDateTooFar возвращается, когда дата начала слишком далеко в будущем
	ErrStartDateTooFar = errors.New("create_rental: start date is too far in the future")

	// ErrConcurrentUpdate возвращается, когда транзакцию вытеснило конкурентное создание аренды
	ErrConcurrentUpdate = errors.New("create_rental: concurrent update, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rental: internal error")
)
