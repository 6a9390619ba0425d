package models

import "time"

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

type EmergencyContact struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty"`
}

type Patient struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	UserID           string           `json:"userId" bson:"userId"`
	Gender           string           `json:"gender,omitempty" bson:"gender,omitempty"`
	DateOfBirth      *time.Time       `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	ContactNumber    string           `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Address          Address          `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact EmergencyContact `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	MedicalHistory   []string         `json:"medicalHistory" bson:"medicalHistory"`
	BloodGroup       string           `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	TimeModel        `bson:",inline"`
}
