package requests

type CreateReceptionistRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Shift           string `json:"shift,omitempty" validate:"omitempty,oneof=morning night"`
	Department      string `json:"department,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	ExperienceYears int    `json:"experienceYears,omitempty" validate:"omitempty,min=0,max=80"`
}

type UpdateReceptionistRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Shift           *string `json:"shift,omitempty" validate:"omitempty,oneof=morning night"`
	Department      *string `json:"department,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty" validate:"omitempty,min=0,max=80"`
}
