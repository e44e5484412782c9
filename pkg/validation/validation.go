package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/oceanshop/storefront/pkg/response"
)

// RequestValidator is plugged into echo as its Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func CreateRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Errors flattens validator failures into the response payload shape.
func Errors(err error) []response.ValidationError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]response.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		out = append(out, response.ValidationError{
			Field: fieldErr.Field(),
			Tag:   fieldErr.Tag(),
		})
	}
	return out
}
