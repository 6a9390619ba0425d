package appointments

import (
	"fmt"
	"time"

	"hms-service/internal/pkg/constvars"
)

// GenerateSlots expands an availability window into bookable start times at the
// fixed 30-minute cadence. The window is half-open: a slot exists while its
// start is strictly before the closing time, so 09:00-17:00 yields 16 slots
// ending at 16:30.
func GenerateSlots(from, to string) ([]string, error) {
	fromMinutes, err := clockToMinutes(from)
	if err != nil {
		return nil, err
	}
	toMinutes, err := clockToMinutes(to)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, (toMinutes-fromMinutes)/constvars.SlotIntervalMinutes)
	for m := fromMinutes; m < toMinutes; m += constvars.SlotIntervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

func clockToMinutes(value string) (int, error) {
	t, err := time.Parse(constvars.TimeLayout, value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
