package domain

import "errors"

var (
	// ErrInvalidPlan возвращается, когда план аренды не входит в фиксированный набор
	ErrInvalidPlan = errors.New("rental: invalid plan")

	// ErrAssetUnavailable возвращается, когда запрошенный период пересекается с активной арендой
	ErrAssetUnavailable = errors.New("rental: asset is not available for the requested period")

	// ErrNotActive возвращается при попытке завершить неактивную аренду
	ErrNotActive = errors.New("rental: rental is not active")
)
