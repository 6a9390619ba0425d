package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	clockPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	weekdayPattern = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClock(fl validator.FieldLevel) bool {
	return clockPattern.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdayPattern.MatchString(fl.Field().String())
}
