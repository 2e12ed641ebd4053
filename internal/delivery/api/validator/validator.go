// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// Validate validates a bound request struct.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return describe(fieldErrs)
		}

		return errors.WithStack(err)
	}

	return nil
}

// FieldError is one failed rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError lists every failed rule of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		part := f.Field + " failed " + f.Rule
		if f.Param != "" {
			part += "=" + f.Param
		}
		parts = append(parts, part)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

func describe(fieldErrs playground.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:],
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
