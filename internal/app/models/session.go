package models

// Session is the Redis-backed login session the bearer token resolves to.
// ProfileID is the role-profile id (doctor/patient/receptionist) when one
// exists; admins have none.
type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ProfileID string `json:"profileId,omitempty"`
}
