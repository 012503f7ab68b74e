package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBR(t *testing.T) {
	t.Run("valid brazilian date", func(t *testing.T) {
		d, err := ParseBR("15/03/2024")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("iso fallback", func(t *testing.T) {
		d, err := ParseBR("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("nonexistent day rejected", func(t *testing.T) {
		_, err := ParseBR("31/02/2024")
		assert.Error(t, err)
	})

	t.Run("month thirteen rejected", func(t *testing.T) {
		_, err := ParseBR("01/13/2024")
		assert.Error(t, err)
	})

	t.Run("leap day accepted on leap year only", func(t *testing.T) {
		_, err := ParseBR("29/02/2024")
		assert.NoError(t, err)

		_, err = ParseBR("29/02/2023")
		assert.Error(t, err)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := ParseBR("")
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	d, err := ParseBR("05/01/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", ToISO(d))
	assert.Equal(t, "05/01/2025", FormatBR(d))
}
