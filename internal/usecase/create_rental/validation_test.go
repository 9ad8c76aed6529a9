package create_rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestResolveStartDate(t *testing.T) {
	t.Run("defaults to tomorrow midnight UTC", func(t *testing.T) {
		start, err := resolveStartDate(nil, now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("today is accepted", func(t *testing.T) {
		today := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

		start, err := resolveStartDate(&today, now)

		require.NoError(t, err)
		assert.Equal(t, today, start)
	})

	t.Run("last allowed day", func(t *testing.T) {
		last := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, domain.MaxStartDateAdvanceDays)

		_, err := resolveStartDate(&last, now)

		assert.NoError(t, err)
	})

	t.Run("other time zone is normalised to UTC", func(t *testing.T) {
		local := time.Date(2025, 10, 5, 3, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

		start, err := resolveStartDate(&local, now)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, start.Location())
		assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), start)
	})
}
