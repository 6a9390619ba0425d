package models

import "time"

type Medication struct {
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Duration     string `json:"duration" bson:"duration"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

// Prescription carries a creation timestamp only; the record is written once by
// the treating doctor.
type Prescription struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	AppointmentID string       `json:"appointmentId" bson:"appointmentId"`
	DoctorID      string       `json:"doctorId" bson:"doctorId"`
	PatientID     string       `json:"patientId" bson:"patientId"`
	Medications   []Medication `json:"medications" bson:"medications"`
	Notes         string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
}
