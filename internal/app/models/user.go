package models

// User is the authentication identity record, one per person. Role-specific
// profile data lives in the Doctor/Patient/Receptionist collections keyed by
// UserID.
type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Role      string `json:"role" bson:"role"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	TimeModel `bson:",inline"`
}
