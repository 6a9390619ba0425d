package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("full working day yields sixteen half-hour slots", func(t *testing.T) {
		slots, err := GenerateSlots("09:00", "17:00")
		require.NoError(t, err)

		assert.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "09:30", slots[1])
		assert.Equal(t, "16:30", slots[len(slots)-1])
		assert.NotContains(t, slots, "17:00", "closing time itself is not bookable")
	})

	t.Run("short saturday window", func(t *testing.T) {
		slots, err := GenerateSlots("10:00", "14:00")
		require.NoError(t, err)

		assert.Len(t, slots, 8)
		assert.Equal(t, "10:00", slots[0])
		assert.Equal(t, "13:30", slots[len(slots)-1])
	})

	t.Run("window not aligned to the half hour", func(t *testing.T) {
		slots, err := GenerateSlots("09:15", "10:30")
		require.NoError(t, err)

		assert.Equal(t, []string{"09:15", "09:45"}, slots)
	})

	t.Run("empty window yields no slots", func(t *testing.T) {
		slots, err := GenerateSlots("09:00", "09:00")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("invalid clock value", func(t *testing.T) {
		_, err := GenerateSlots("9am", "17:00")
		assert.Error(t, err)
	})
}
