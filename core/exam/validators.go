package exam

import (
	"github.com/go-playground/validator/v10"

	"github.com/kalulu/darasa/core"
)

var (
	timeOfDayTag  = "timeofday"
	timeOfDayText = "must be a 24-hour time in HH:MM format"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(timeOfDayTag, timeOfDayValidation)
	core.RegisterCustomTranslation(timeOfDayTag, timeOfDayText)
}

// timeOfDayValidation only allows well-formed "HH:MM" wall-clock times.
func timeOfDayValidation(fl validator.FieldLevel) bool {
	_, err := ParseTimeOfDay(fl.Field().String())
	return err == nil
}
