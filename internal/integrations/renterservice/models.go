package renterservice

import "github.com/google/uuid"

// Типы водительских удостоверений
const (
	LicenseA  = "A"
	LicenseB  = "B"
	LicenseAB = "AB"
)

// Renter модель арендатора (курьера) из RenterService
type Renter struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LicenseType string    `json:"license_type"`
	IsActive    bool      `json:"is_active"`
}

// CanRent проверяет, может ли арендатор брать мотоцикл в аренду.
// Требуется действующая учётная запись и категория A (или AB).
func (r *Renter) CanRent() bool {
	if !r.IsActive {
		return false
	}
	return r.LicenseType == LicenseA || r.LicenseType == LicenseAB
}
