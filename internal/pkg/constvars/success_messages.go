package constvars

const (
	ResponseUnknown = "unknown"

	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "User deleted successfully"
	ProfileGetSuccess  = "get profile successfully"

	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"
	SignupSuccess = "patient registered successfully"

	DoctorCreatedSuccess = "doctor created successfully"
	DoctorUpdatedSuccess = "doctor updated successfully"
	DoctorDeletedSuccess = "Doctor and linked user deleted successfully"

	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientDeletedSuccess = "Patient and linked user deleted successfully"

	ReceptionistCreatedSuccess = "receptionist created successfully"
	ReceptionistUpdatedSuccess = "receptionist updated successfully"
	ReceptionistDeletedSuccess = "Receptionist and linked user deleted successfully"

	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentBookedSuccess    = "Appointment booked successfully"
	AppointmentUpdatedSuccess   = "appointment updated successfully"
	AppointmentCancelledSuccess = "Appointment cancelled successfully"
	AppointmentDeletedSuccess   = "Appointment deleted successfully"

	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionUpdatedSuccess = "prescription updated successfully"
	PrescriptionDeletedSuccess = "Prescription deleted successfully"

	BillCreatedSuccess = "Bill created successfully"
	BillUpdatedSuccess = "bill updated successfully"
	BillDeletedSuccess = "Bill deleted successfully"
	BillPaidSuccess    = "Payment processed successfully"

	PasswordChangedSuccess = "Password changed successfully"

	FetchSuccess = "data fetched successfully"
)
