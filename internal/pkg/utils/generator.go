package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePaymentReference produces the synthetic gateway reference stamped on
// paid bills. The real gateway integration passes its own ids through untouched.
func GeneratePaymentReference() string {
	return fmt.Sprintf("pay_%d", time.Now().UnixMilli())
}
