package converter

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDoctorToResponse_Placeholders(t *testing.T) {
	resp := DoctorToResponse(entity.Doctor{Name: "Dr. Alice", Experience: 1})

	assert.Equal(t, "Dr. Alice", resp.Name)
	assert.Equal(t, Placeholder, resp.Mode)
	assert.Equal(t, Placeholder, resp.Qualification)
	assert.Equal(t, Placeholder, resp.Hospital)
	assert.Equal(t, Placeholder, resp.Location)
	assert.Equal(t, []string{}, resp.Speciality)
	assert.Equal(t, []string{}, resp.Languages)
	assert.Equal(t, "1 year of experience", resp.ExperienceLabel)
	assert.Equal(t, "₹ 0", resp.FeeLabel)
}

func TestDoctorToResponse_Fields(t *testing.T) {
	resp := DoctorToResponse(entity.Doctor{
		Name:          "Dr. Bob",
		Mode:          entity.ModeInClinic,
		Speciality:    []string{"ENT"},
		Experience:    9,
		Fees:          decimal.RequireFromString("450.50"),
		Qualification: "MBBS",
		Hospital:      "City Hospital",
		Location:      "Pune",
		Languages:     []string{"English"},
	})

	assert.Equal(t, entity.ModeInClinic, resp.Mode)
	assert.Equal(t, []string{"ENT"}, resp.Speciality)
	assert.Equal(t, "9 years of experience", resp.ExperienceLabel)
	assert.Equal(t, "₹ 450", resp.FeeLabel)
	assert.Equal(t, "City Hospital", resp.Hospital)
}

func TestDoctorsToSuggestions(t *testing.T) {
	got := DoctorsToSuggestions([]entity.Doctor{{Name: "A", Speciality: []string{"ENT"}}, {Name: "B"}})

	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "B", got[1].Name)
}
