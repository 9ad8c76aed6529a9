package domain

import "github.com/shopspring/decimal"

// LateFeePerDay is the flat surcharge for each day past the expected end date
var LateFeePerDay = decimal.RequireFromString("50.00")

// HoursPerDay used to turn elapsed time into whole days
const HoursPerDay = 24

// Business validation constants
const (
	MaxStartDateAdvanceDays = 90 // Как далеко вперёд можно назначить начало аренды
	MoneyScale              = 2  // Знаков после запятой при отображении сумм
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
