package util

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Field limits enforced on comment submissions.
const (
	MaxDisplayNameLength = 100
	MaxBodyLength        = 1000
	MaxPageIDLength      = 200
)

var (
	ErrFieldEmpty   = errors.New("field is empty")
	ErrFieldTooLong = errors.New("field is too long")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateField checks a single user-supplied field against its length
// bounds. Limits are in characters, not bytes. Runs before anything is
// persisted or dispatched.
func ValidateField(field, value string, maxLength int) error {
	if len(value) == 0 {
		return errors.Wrap(ErrFieldEmpty, field)
	}
	if utf8.RuneCountInString(value) > maxLength {
		return errors.Wrapf(ErrFieldTooLong, "%s exceeds %d characters", field, maxLength)
	}
	return nil
}
