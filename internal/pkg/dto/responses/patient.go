package responses

import (
	"time"

	"hms-service/internal/app/models"
)

type PatientDetail struct {
	ID               string                  `json:"id"`
	User             *UserSummary            `json:"user,omitempty"`
	Gender           string                  `json:"gender,omitempty"`
	DateOfBirth      *time.Time              `json:"dateOfBirth,omitempty"`
	ContactNumber    string                  `json:"contactNumber,omitempty"`
	Address          models.Address          `json:"address,omitempty"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalHistory   []string                `json:"medicalHistory"`
	BloodGroup       string                  `json:"bloodGroup,omitempty"`
}
