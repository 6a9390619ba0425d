package models

import (
	"hms-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	PatientID          string    `json:"patientId" bson:"patientId"`
	DoctorID           string    `json:"doctorId" bson:"doctorId"`
	ReceptionistID     string    `json:"receptionistId,omitempty" bson:"receptionistId,omitempty"`
	Date               time.Time `json:"date" bson:"date"`
	Time               string    `json:"time" bson:"time"`
	Status             string    `json:"status" bson:"status"`
	Reason             string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Notes              string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	TimeModel          `bson:",inline"`
}

// Cancellable reports whether the appointment may still transition to
// cancelled. Completed and already-cancelled appointments are terminal.
func (a *Appointment) Cancellable() bool {
	switch a.Status {
	case constvars.AppointmentStatusBooked,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusPending:
		return true
	}
	return false
}
