package converter

import (
	"fmt"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

// Placeholder stands in for optional display fields missing from the payload.
const Placeholder = "Not specified"

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	speciality := doctor.Speciality
	if speciality == nil {
		speciality = []string{}
	}
	languages := doctor.Languages
	if languages == nil {
		languages = []string{}
	}

	return dto.DoctorResponse{
		Name:            doctor.Name,
		Mode:            orPlaceholder(doctor.Mode),
		Speciality:      speciality,
		Experience:      doctor.Experience,
		ExperienceLabel: experienceLabel(doctor.Experience),
		Fees:            doctor.Fees,
		FeeLabel:        "₹ " + doctor.Fees.StringFixedBank(0),
		Qualification:   orPlaceholder(doctor.Qualification),
		Hospital:        orPlaceholder(doctor.Hospital),
		Location:        orPlaceholder(doctor.Location),
		Languages:       languages,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor)
	}
	return responses
}

func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			Name:       doctor.Name,
			Speciality: doctor.Speciality,
		}
	}
	return suggestions
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func experienceLabel(years int) string {
	if years == 1 {
		return "1 year of experience"
	}
	return fmt.Sprintf("%d years of experience", years)
}
