package requests

type MedicationRequest struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

type CreatePrescriptionRequest struct {
	AppointmentID string              `json:"appointmentId" validate:"required"`
	Medications   []MedicationRequest `json:"medications" validate:"required,min=1,dive"`
	Notes         string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdatePrescriptionRequest struct {
	Medications *[]MedicationRequest `json:"medications,omitempty" validate:"omitempty,min=1,dive"`
	Notes       *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
