package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// rifPattern matches a Venezuelan fiscal number: kind letter, eight digits
// and a check digit, with or without separating dashes.
var rifPattern = regexp.MustCompile(`^[VEJPG]-?\d{8}-?\d$`)

// RegisterCustomValidators installs the binding validators the request DTOs
// reference. Call once before routes are registered.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rif", func(fl validator.FieldLevel) bool {
			return rifPattern.MatchString(fl.Field().String())
		})
	}
}
