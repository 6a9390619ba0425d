package models

import "hms-service/internal/pkg/constvars"

type Receptionist struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	UserID          string `json:"userId" bson:"userId"`
	Shift           string `json:"shift,omitempty" bson:"shift,omitempty"`
	ShiftTimings    string `json:"shiftTimings,omitempty" bson:"shiftTimings,omitempty"`
	Department      string `json:"department,omitempty" bson:"department,omitempty"`
	Qualification   string `json:"qualification,omitempty" bson:"qualification,omitempty"`
	ExperienceYears int    `json:"experienceYears,omitempty" bson:"experienceYears,omitempty"`
	TimeModel       `bson:",inline"`
}

// ShiftTimingsFor derives the display timings from the shift name. Applied
// explicitly on every write that sets the shift, never as a stored side effect.
func ShiftTimingsFor(shift string) string {
	switch shift {
	case constvars.ShiftMorning:
		return constvars.ShiftTimingsMorning
	case constvars.ShiftNight:
		return constvars.ShiftTimingsNight
	default:
		return ""
	}
}
