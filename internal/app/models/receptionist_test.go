package models

import (
	"testing"

	"hms-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestShiftTimingsFor(t *testing.T) {
	assert.Equal(t, constvars.ShiftTimingsMorning, ShiftTimingsFor(constvars.ShiftMorning))
	assert.Equal(t, constvars.ShiftTimingsNight, ShiftTimingsFor(constvars.ShiftNight))
	assert.Empty(t, ShiftTimingsFor("afternoon"))
	assert.Empty(t, ShiftTimingsFor(""))
}
