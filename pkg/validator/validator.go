package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}

		errMsgs := make([]string, 0, len(verrs))
		for _, err := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Field(), err.Tag(), err.Param(),
			))
		}
		return &Error{msg: strings.Join(errMsgs, "; "), fields: verrs}
	}
	return nil
}

// Error keeps the field errors reachable through errors.As.
type Error struct {
	msg    string
	fields validator.ValidationErrors
}

func (e *Error) Error() string {
	return "validation failed: " + e.msg
}

func (e *Error) Unwrap() error {
	return e.fields
}

// FirstInvalidField returns the name of the first field that failed validation, if any.
func FirstInvalidField(err error) string {
	var verrs validator.ValidationErrors
	if err == nil || !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Field()
}
