package responses

import "time"

type BillDetail struct {
	ID               string                   `json:"id"`
	Appointment      *PrescriptionAppointment `json:"appointment,omitempty"`
	Patient          *AppointmentParty        `json:"patient,omitempty"`
	Doctor           *AppointmentParty        `json:"doctor,omitempty"`
	Amount           float64                  `json:"amount"`
	PaymentStatus    string                   `json:"paymentStatus"`
	PaymentMethod    string                   `json:"paymentMethod,omitempty"`
	PaidAt           *time.Time               `json:"paidAt,omitempty"`
	PaymentReference string                   `json:"paymentReference,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
}
