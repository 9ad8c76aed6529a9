package renterservice

import "errors"

var (
	// ErrRenterNotFound возвращается, когда арендатор не найден
	ErrRenterNotFound = errors.New("renterservice client: renter not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("renterservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("renterservice client: invalid response")
)
