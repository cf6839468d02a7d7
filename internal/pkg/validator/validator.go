package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields, returning field -> failed tag.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// Missing lists the fields that failed a "required" tag, i.e. were absent
// or zero in the request body.
func Missing(v interface{}) []string {
	fields := make([]string, 0)
	for field, tag := range Validate(v) {
		if tag == "required" {
			fields = append(fields, field)
		}
	}
	return fields
}
