package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type query struct {
	Specialty string `validate:"omitempty,specialties"`
	Sort      string `validate:"omitempty,oneof=fees experience"`
	Name      string `validate:"required"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&query{Name: "a", Specialty: "ENT,Dietitian/Nutritionist", Sort: "fees"}))
	assert.NoError(t, v.Validate(&query{Name: "a"}))
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&query{Specialty: "ENT,Surgeon", Sort: "rating"})
	assert.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", errs["Name"])
	assert.Equal(t, "Sort must be one of: fees experience", errs["Sort"])
	assert.Contains(t, errs["Specialty"], "known specialties")
}
