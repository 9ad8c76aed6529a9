package list_plans

import "github.com/m04kA/SMC-RentalService/internal/service/rentals/models"

type PlanService interface {
	ListPlans() []models.PlanResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
