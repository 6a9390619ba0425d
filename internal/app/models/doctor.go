package models

// AvailabilityWindow is one weekly consultation window. At most one window per
// day is accepted at write time; slot generation assumes that invariant.
type AvailabilityWindow struct {
	Day  string `json:"day" bson:"day"`
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

type Doctor struct {
	ID              string               `json:"id" bson:"_id,omitempty"`
	UserID          string               `json:"userId" bson:"userId"`
	Specialization  string               `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Qualification   string               `json:"qualification,omitempty" bson:"qualification,omitempty"`
	ExperienceYears int                  `json:"experienceYears,omitempty" bson:"experienceYears,omitempty"`
	ContactNumber   string               `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	ConsultationFee float64              `json:"consultationFee,omitempty" bson:"consultationFee,omitempty"`
	Department      string               `json:"department,omitempty" bson:"department,omitempty"`
	Availability    []AvailabilityWindow `json:"availability" bson:"availability"`
	TimeModel       `bson:",inline"`
}

// WindowFor returns the availability window for a short weekday name
// ("Mon".."Sun"), or false when the doctor does not consult that day.
func (d *Doctor) WindowFor(day string) (AvailabilityWindow, bool) {
	for _, w := range d.Availability {
		if w.Day == day {
			return w, true
		}
	}
	return AvailabilityWindow{}, false
}
