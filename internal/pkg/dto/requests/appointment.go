package requests

// BookAppointmentRequest is the patient self-service booking payload. PatientID
// comes from the session, never from the body.
type BookAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required,clock"`
	Reason   string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// CreateAppointmentRequest is the staff booking path; it names the patient
// explicitly and may carry an initial status.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required,clock"`
	Reason    string `json:"reason,omitempty" validate:"omitempty,max=500"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=pending booked confirmed"`
}

// UpdateAppointmentRequest is the loose staff override; it may also reassign
// the appointment to another patient, doctor or receptionist.
type UpdateAppointmentRequest struct {
	PatientID      *string `json:"patientId,omitempty"`
	DoctorID       *string `json:"doctorId,omitempty"`
	ReceptionistID *string `json:"receptionistId,omitempty"`
	Date           *string `json:"date,omitempty"`
	Time           *string `json:"time,omitempty" validate:"omitempty,clock"`
	Reason         *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=pending booked confirmed completed cancelled"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// UpdateAppointmentStatusRequest is the doctor lifecycle transition; only the
// terminal statuses are reachable through it.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
