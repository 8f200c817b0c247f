package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Consent string `json:"gdprConsent" validate:"required,consent"`
	Extra   string `json:"extra" validate:"omitempty,max=3"`
}

func TestFieldErrorMap(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	t.Run("Fields are keyed by json tag with known messages", func(t *testing.T) {
		err := v.Struct(sampleForm{Name: "J", Email: "nope", Consent: "off"})
		require.Error(t, err)

		errs := FieldErrorMap(err)
		assert.Equal(t, []string{"Name must be at least 2 characters."}, errs["name"])
		assert.Equal(t, []string{"Please enter a valid email address."}, errs["email"])
		assert.Equal(t, []string{"You must agree to the privacy policy."}, errs["gdprConsent"])
	})

	t.Run("Unknown field falls back to a generic message", func(t *testing.T) {
		err := v.Struct(sampleForm{Name: "Jane", Email: "jane@example.com", Consent: "on", Extra: "toolong"})
		require.Error(t, err)

		errs := FieldErrorMap(err)
		require.Contains(t, errs, "extra")
		assert.Contains(t, errs["extra"][0], "extra")
	})

	t.Run("Non-validation errors are preserved under a catch-all key", func(t *testing.T) {
		errs := FieldErrorMap(errors.New("boom"))
		assert.Equal(t, []string{"boom"}, errs["_form"])
	})
}

func TestConsentValidator(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	type form struct {
		Consent string `json:"consent" validate:"consent"`
	}

	assert.NoError(t, v.Struct(form{Consent: "on"}))
	assert.Error(t, v.Struct(form{Consent: "true"}))
	assert.Error(t, v.Struct(form{Consent: ""}))
}
