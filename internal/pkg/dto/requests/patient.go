package requests

type AddressRequest struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type EmergencyContactRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

type CreatePatientRequest struct {
	Name             string                   `json:"name" validate:"required,min=2,max=100"`
	Email            string                   `json:"email" validate:"required,email"`
	Password         string                   `json:"password" validate:"required,min=6"`
	Phone            string                   `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Gender           string                   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth      string                   `json:"dateOfBirth,omitempty"`
	ContactNumber    string                   `json:"contactNumber,omitempty"`
	Address          *AddressRequest          `json:"address,omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergencyContact,omitempty"`
	MedicalHistory   []string                 `json:"medicalHistory,omitempty"`
	BloodGroup       string                   `json:"bloodGroup,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// UpdatePatientProfileRequest is the patient self-service profile update.
type UpdatePatientProfileRequest struct {
	ContactNumber    *string                  `json:"contactNumber,omitempty"`
	Address          *AddressRequest          `json:"address,omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergencyContact,omitempty"`
	BloodGroup       *string                  `json:"bloodGroup,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

type UpdatePatientRequest struct {
	Name             *string                  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone            *string                  `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Gender           *string                  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth      *string                  `json:"dateOfBirth,omitempty"`
	ContactNumber    *string                  `json:"contactNumber,omitempty"`
	Address          *AddressRequest          `json:"address,omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergencyContact,omitempty"`
	MedicalHistory   *[]string                `json:"medicalHistory,omitempty"`
	BloodGroup       *string                  `json:"bloodGroup,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}
