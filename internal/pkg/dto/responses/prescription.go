package responses

import (
	"time"

	"hms-service/internal/app/models"
)

type PrescriptionAppointment struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Reason string    `json:"reason,omitempty"`
}

type PrescriptionDetail struct {
	ID          string                   `json:"id"`
	Appointment *PrescriptionAppointment `json:"appointment,omitempty"`
	Doctor      *AppointmentParty        `json:"doctor,omitempty"`
	Patient     *AppointmentParty        `json:"patient,omitempty"`
	Medications []models.Medication      `json:"medications"`
	Notes       string                   `json:"notes,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
}
