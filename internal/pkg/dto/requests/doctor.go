package requests

// AvailabilityWindowRequest is one weekly window in a doctor payload. From and
// To are 24-hour clock strings; the usecase rejects duplicate days and windows
// where From is not strictly before To.
type AvailabilityWindowRequest struct {
	Day  string `json:"day" validate:"required,weekday"`
	From string `json:"from" validate:"required,clock"`
	To   string `json:"to" validate:"required,clock"`
}

// CreateDoctorRequest provisions the user account and the doctor profile in
// one call.
type CreateDoctorRequest struct {
	Name            string                      `json:"name" validate:"required,min=2,max=100"`
	Email           string                      `json:"email" validate:"required,email"`
	Password        string                      `json:"password" validate:"required,min=6"`
	Phone           string                      `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Specialization  string                      `json:"specialization,omitempty"`
	Qualification   string                      `json:"qualification,omitempty"`
	ExperienceYears int                         `json:"experienceYears,omitempty" validate:"omitempty,min=0,max=80"`
	ContactNumber   string                      `json:"contactNumber,omitempty"`
	ConsultationFee float64                     `json:"consultationFee,omitempty" validate:"omitempty,min=0"`
	Department      string                      `json:"department,omitempty"`
	Availability    []AvailabilityWindowRequest `json:"availability,omitempty" validate:"omitempty,dive"`
}

// UpdateDoctorProfileRequest is the doctor self-service profile update; only
// the consultation-facing fields are editable.
type UpdateDoctorProfileRequest struct {
	ContactNumber   *string                      `json:"contactNumber,omitempty"`
	ConsultationFee *float64                     `json:"consultationFee,omitempty" validate:"omitempty,min=0"`
	Availability    *[]AvailabilityWindowRequest `json:"availability,omitempty" validate:"omitempty,dive"`
}

// UpdateDoctorRequest is an explicit partial update; nil fields stay untouched.
type UpdateDoctorRequest struct {
	Name            *string                      `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone           *string                      `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Specialization  *string                      `json:"specialization,omitempty"`
	Qualification   *string                      `json:"qualification,omitempty"`
	ExperienceYears *int                         `json:"experienceYears,omitempty" validate:"omitempty,min=0,max=80"`
	ContactNumber   *string                      `json:"contactNumber,omitempty"`
	ConsultationFee *float64                     `json:"consultationFee,omitempty" validate:"omitempty,min=0"`
	Department      *string                      `json:"department,omitempty"`
	Availability    *[]AvailabilityWindowRequest `json:"availability,omitempty" validate:"omitempty,dive"`
}
