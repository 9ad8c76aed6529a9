package fleetservice

import "errors"

var (
	// ErrAssetNotFound возвращается, когда транспортное средство не найдено
	ErrAssetNotFound = errors.New("fleetservice client: asset not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")
)
