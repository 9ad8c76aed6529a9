package fleetservice

import "github.com/google/uuid"

// Asset модель транспортного средства из FleetService
type Asset struct {
	ID           uuid.UUID `json:"id"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
}
