package requests

type CreateBillRequest struct {
	AppointmentID string  `json:"appointmentId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBillRequest struct {
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentStatus *string  `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid failed"`
}

// CreateAppointmentBillRequest is the self-checkout path: the bill is created
// already settled with a synthetic payment reference.
type CreateAppointmentBillRequest struct {
	AppointmentID string  `json:"appointmentId" validate:"required"`
	DoctorID      string  `json:"doctorId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card cash upi netbanking"`
}

// PayBillRequest settles a pending bill. The razorpay fields are optional
// gateway identifiers recorded verbatim when the client paid online.
type PayBillRequest struct {
	PaymentMethod     string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card cash upi netbanking"`
	RazorpayOrderID   string `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string `json:"razorpaySignature,omitempty"`
}
