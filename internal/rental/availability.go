package rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// IsFree reports whether the candidate window [start, end) can be reserved given the
// active windows already held on the same asset. Completed rentals must not be passed in.
func IsFree(start, end time.Time, activeWindows []domain.Window) bool {
	candidate := domain.Window{Start: start, End: end}
	for _, w := range activeWindows {
		if candidate.Overlaps(w) {
			return false
		}
	}
	return true
}

// Conflicts returns the active windows that overlap the candidate window
func Conflicts(start, end time.Time, activeWindows []domain.Window) []domain.Window {
	candidate := domain.Window{Start: start, End: end}
	conflicts := make([]domain.Window, 0)
	for _, w := range activeWindows {
		if candidate.Overlaps(w) {
			conflicts = append(conflicts, w)
		}
	}
	return conflicts
}
