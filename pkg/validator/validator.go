package validator

import (
	"doctor-directory/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("specialties", validateSpecialties)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "specialties":
				errors[field] = field + " must list known specialties separated by commas"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// validateSpecialties accepts a comma-joined list drawn from the vocabulary.
func validateSpecialties(fl validator.FieldLevel) bool {
	for _, s := range entity.SplitList(fl.Field().String()) {
		if !entity.IsKnownSpecialty(s) {
			return false
		}
	}
	return true
}
