package constvars

// Client-facing messages. The wording of the domain messages is part of the API
// contract and is relied on by the web client.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request"
	ErrClientServerLongRespond             = "Server takes too long to respond"
	ErrClientNotLoggedIn                   = "You are not logged in"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"

	ErrClientInvalidCredentials = "Invalid credentials"
	ErrClientUserAlreadyExists  = "User with this email already exists"
	ErrClientUserNotFound       = "User not found"

	ErrClientDoctorNotFound             = "Doctor not found"
	ErrClientDoctorProfileNotFound      = "Doctor profile not found"
	ErrClientPatientNotFound            = "Patient not found"
	ErrClientPatientProfileNotFound     = "Patient profile not found"
	ErrClientReceptionistNotFound       = "Receptionist not found"
	ErrClientAppointmentNotFound        = "Appointment not found"
	ErrClientPrescriptionNotFound       = "Prescription not found"
	ErrClientBillNotFound               = "Bill not found"
	ErrClientDuplicateAvailabilityDay   = "Availability contains more than one entry for the same day"
	ErrClientBookingFieldsRequired      = "Doctor ID, date, and time are required"
	ErrClientSlotNoLongerAvailable      = "This time slot is no longer available"
	ErrClientAppointmentNotCancellable  = "Only booked, confirmed, or pending appointments can be cancelled"
	ErrClientInvalidAppointmentStatus   = "Invalid status. Must be 'completed' or 'cancelled'"
	ErrClientForeignAppointmentAccess   = "Forbidden: Cannot access other patients' appointments"
	ErrClientForeignAppointmentUpdate   = "Forbidden: Cannot update other doctors' appointments"
	ErrClientForeignAppointmentCancel   = "Forbidden: Cannot cancel other patients' appointments"
	ErrClientForeignBillAccess          = "Forbidden: Cannot access other patients' bills"
	ErrClientForeignBillPay             = "Forbidden: Cannot pay other patients' bills"
	ErrClientForeignPrescriptionAccess  = "Forbidden: Cannot access other patients' prescriptions"
	ErrClientForeignPatientAccess       = "Forbidden: Cannot access other patients"
	ErrClientForeignDoctorAccess        = "Forbidden: Cannot access other doctors"
	ErrClientBillFieldsRequired         = "Appointment ID, doctor ID, and amount are required"
	ErrClientBillAlreadyExists          = "Bill already exists for this appointment"
	ErrClientOnlyPendingBillsPayable    = "Only pending bills can be paid"
	ErrClientPasswordFieldsRequired     = "Current password and new password are required"
	ErrClientPasswordTooShort           = "New password must be at least 6 characters long"
	ErrClientCurrentPasswordIncorrect   = "Current password is incorrect"
)

// Developer-facing messages, logged and exposed outside production only.
const (
	ErrDevValidationFailed         = "request payload validation failed"
	ErrDevCannotParseJSON          = "failed to parse JSON request body"
	ErrDevCannotParseDate          = "failed to parse date parameter"
	ErrDevServerDeadlineExceeded   = "request deadline exceeded"
	ErrDevMissingRequestID         = "request id not found in context"
	ErrDevMissingSessionData       = "session data not found in context"
	ErrDevAuthTokenMissing         = "authorization token missing from request header"
	ErrDevAuthTokenInvalid         = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSigningMethod        = "unexpected jwt signing method"
	ErrDevAuthGenerateToken        = "failed to generate jwt token"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevAuthRoleNotAllowed       = "role not in operation allow list"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "email not registered or password mismatch"

	ErrDevDBFailedToFindDocument    = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb failed to delete document"
	ErrDevDBFailedToCountDocuments  = "mongodb failed to count documents"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid mongodb object id"
	ErrDevDBDuplicateKey            = "mongodb unique index rejected duplicate document"

	ErrDevRedisSet    = "redis failed to set key"
	ErrDevRedisGet    = "redis failed to get key"
	ErrDevRedisDelete = "redis failed to delete key"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"clock":    "must be a valid 24h time in HH:MM format",
	"weekday":  "must be a short weekday name (Mon..Sun)",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
