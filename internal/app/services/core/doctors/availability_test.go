package doctors

import (
	"testing"

	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailability(t *testing.T) {
	t.Run("valid windows pass through", func(t *testing.T) {
		availability, err := BuildAvailability([]requests.AvailabilityWindowRequest{
			{Day: "Mon", From: "09:00", To: "17:00"},
			{Day: "Sat", From: "10:00", To: "14:00"},
		})
		require.NoError(t, err)

		require.Len(t, availability, 2)
		assert.Equal(t, "Mon", availability[0].Day)
		assert.Equal(t, "09:00", availability[0].From)
		assert.Equal(t, "17:00", availability[0].To)
	})

	t.Run("duplicate day is rejected", func(t *testing.T) {
		_, err := BuildAvailability([]requests.AvailabilityWindowRequest{
			{Day: "Mon", From: "09:00", To: "12:00"},
			{Day: "Mon", From: "13:00", To: "17:00"},
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDuplicateAvailabilityDay, customErr.ClientMessage)
	})

	t.Run("window must open before it closes", func(t *testing.T) {
		_, err := BuildAvailability([]requests.AvailabilityWindowRequest{
			{Day: "Tue", From: "17:00", To: "09:00"},
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "Tue")
	})

	t.Run("zero-length window is rejected", func(t *testing.T) {
		_, err := BuildAvailability([]requests.AvailabilityWindowRequest{
			{Day: "Wed", From: "09:00", To: "09:00"},
		})
		assert.Error(t, err)
	})

	t.Run("empty payload yields empty availability", func(t *testing.T) {
		availability, err := BuildAvailability(nil)
		require.NoError(t, err)
		assert.Empty(t, availability)
	})
}
