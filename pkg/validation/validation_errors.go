package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps field/tag pairs to the user-facing copy the site shows.
// The same table backs the client-side rules, so both sides stay in lockstep.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name must be at least 2 characters.",
		"min":      "Name must be at least 2 characters.",
	},
	"email": {
		"required": "Please enter a valid email address.",
		"email":    "Please enter a valid email address.",
	},
	"message": {
		"required": "Message must be at least 10 characters.",
		"min":      "Message must be at least 10 characters.",
	},
	"gdprConsent": {
		"required": "You must agree to the privacy policy.",
		"consent":  "You must agree to the privacy policy.",
	},
}

// FieldErrorMap converts validator.ValidationErrors into an ordered
// field -> messages map keyed by json field name. Non-validation errors map
// to a single catch-all entry so the caller never loses the failure.
func FieldErrorMap(err error) map[string][]string {
	out := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_form"] = []string{err.Error()}
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()
		out[field] = append(out[field], messageFor(field, e))
	}
	return out
}

func messageFor(field string, e validator.FieldError) string {
	if byTag, ok := fieldMessages[field]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	if e.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s validation.", field, e.Tag(), e.Param())
	}
	return fmt.Sprintf("%s is invalid.", field)
}
