package models

import "time"

// Bill references at most one Appointment, enforced by a unique index on
// appointmentId. The razorpay fields are opaque gateway identifiers passed
// through unprocessed.
type Bill struct {
	ID                string     `json:"id" bson:"_id,omitempty"`
	AppointmentID     string     `json:"appointmentId" bson:"appointmentId"`
	PatientID         string     `json:"patientId" bson:"patientId"`
	DoctorID          string     `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	Amount            float64    `json:"amount" bson:"amount"`
	PaymentStatus     string     `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod     string     `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaidAt            *time.Time `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	PaymentReference  string     `json:"paymentReference,omitempty" bson:"paymentReference,omitempty"`
	RazorpayOrderID   string     `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string     `json:"razorpayPaymentId,omitempty" bson:"razorpayPaymentId,omitempty"`
	RazorpaySignature string     `json:"razorpaySignature,omitempty" bson:"razorpaySignature,omitempty"`
	TimeModel         `bson:",inline"`
}
