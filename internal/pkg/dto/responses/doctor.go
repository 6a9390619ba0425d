package responses

import "hms-service/internal/app/models"

type DoctorDetail struct {
	ID              string                      `json:"id"`
	User            *UserSummary                `json:"user,omitempty"`
	Specialization  string                      `json:"specialization,omitempty"`
	Qualification   string                      `json:"qualification,omitempty"`
	ExperienceYears int                         `json:"experienceYears,omitempty"`
	ContactNumber   string                      `json:"contactNumber,omitempty"`
	ConsultationFee float64                     `json:"consultationFee,omitempty"`
	Department      string                      `json:"department,omitempty"`
	Availability    []models.AvailabilityWindow `json:"availability"`
}

// AvailabilityDoctor is the doctor summary attached to an availability query.
type AvailabilityDoctor struct {
	Name            string  `json:"name"`
	ConsultationFee float64 `json:"consultationFee"`
}

type AvailabilityResponse struct {
	Available   bool               `json:"available"`
	Message     string             `json:"message,omitempty"`
	TimeSlots   []string           `json:"timeSlots"`
	BookedSlots []string           `json:"bookedSlots"`
	AllSlots    []string           `json:"allSlots"`
	Doctor      AvailabilityDoctor `json:"doctor"`
}
