package doctors

import (
	"fmt"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/exceptions"
)

// BuildAvailability converts and validates an availability payload. At most one
// window per day is allowed, and each window must open strictly before it
// closes. Zero-padded HH:MM strings compare correctly as plain strings.
func BuildAvailability(windows []requests.AvailabilityWindowRequest) ([]models.AvailabilityWindow, error) {
	seen := make(map[string]bool, len(windows))
	availability := make([]models.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		if seen[w.Day] {
			return nil, exceptions.ErrDomainRule(constvars.ErrClientDuplicateAvailabilityDay)
		}
		seen[w.Day] = true
		if w.From >= w.To {
			return nil, exceptions.ErrDomainRule(fmt.Sprintf("Availability window for %s must start before it ends", w.Day))
		}
		availability = append(availability, models.AvailabilityWindow{
			Day:  w.Day,
			From: w.From,
			To:   w.To,
		})
	}
	return availability, nil
}
