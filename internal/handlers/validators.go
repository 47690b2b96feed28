package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts numbers like "+1 (123) 456-7890".
var phoneRegex = regexp.MustCompile(`^\+\d{1,3} \(\d{3}\) \d{3}-\d{4}$`)

// RegisterValidators installs the custom binding rules used by the
// request schemas. Must run once before the router serves traffic.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}
