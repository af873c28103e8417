package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const sep = " and "

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
}

func NewXValidator(validator *validator.Validate) IXValidator {
	return &XValidator{validator: validator}
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}

// Fields joins the failed field names for use in error messages and logs.
func Fields(errs []Error) string {
	names := make([]string, 0, len(errs))
	for _, err := range errs {
		names = append(names, err.FailedField)
	}
	return strings.Join(names, sep)
}
