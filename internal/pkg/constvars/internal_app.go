package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionPatients      = "patients"
	MongoCollectionReceptionists = "receptionists"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionBills         = "bills"
)

const (
	RoleAdmin        = "ADMIN"
	RoleDoctor       = "DOCTOR"
	RolePatient      = "PATIENT"
	RoleReceptionist = "RECEPTIONIST"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusBooked    = "booked"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	PaymentMethodCard = "card"
)

const (
	ShiftMorning = "morning"
	ShiftNight   = "night"

	ShiftTimingsMorning = "9:00 AM - 8:00 PM"
	ShiftTimingsNight   = "8:00 PM - 7:00 AM"
)

// SlotIntervalMinutes is the fixed bookable slot length.
const SlotIntervalMinutes = 30

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
