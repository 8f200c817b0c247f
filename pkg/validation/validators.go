package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance and
// teaches it to report fields by their json tag, so error maps line up with
// the form field names the UI uses.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("consent", Consent)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Consent validates the checkbox sentinel: form-encoded checkboxes submit the
// literal "on" when checked, anything else is a refusal.
func Consent(fl validator.FieldLevel) bool {
	return fl.Field().String() == "on"
}
