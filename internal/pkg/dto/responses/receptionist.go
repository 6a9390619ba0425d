package responses

type ReceptionistDetail struct {
	ID              string       `json:"id"`
	User            *UserSummary `json:"user,omitempty"`
	Shift           string       `json:"shift,omitempty"`
	ShiftTimings    string       `json:"shiftTimings,omitempty"`
	Department      string       `json:"department,omitempty"`
	Qualification   string       `json:"qualification,omitempty"`
	ExperienceYears int          `json:"experienceYears,omitempty"`
}
