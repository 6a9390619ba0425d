package responses

import "time"

// AppointmentParty is a populated role-profile reference (doctor or patient)
// carried inside an appointment view.
type AppointmentParty struct {
	ID              string       `json:"id"`
	User            *UserSummary `json:"user,omitempty"`
	Specialization  string       `json:"specialization,omitempty"`
	ConsultationFee float64      `json:"consultationFee,omitempty"`
	ContactNumber   string       `json:"contactNumber,omitempty"`
}

type AppointmentDetail struct {
	ID                 string            `json:"id"`
	Patient            *AppointmentParty `json:"patient,omitempty"`
	Doctor             *AppointmentParty `json:"doctor,omitempty"`
	Date               time.Time         `json:"date"`
	Time               string            `json:"time"`
	Status             string            `json:"status"`
	Reason             string            `json:"reason,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}
