package entity

const (
	ModeVideoConsult = "Video Consult"
	ModeInClinic     = "In Clinic"
)

// ConsultationModes lists the modes offered by the sidebar, in display order.
var ConsultationModes = []string{ModeVideoConsult, ModeInClinic}

// Specialties is the controlled vocabulary a doctor's speciality is drawn from.
var Specialties = []string{
	"General Physician",
	"Dentist",
	"Dermatologist",
	"Paediatrician",
	"Gynaecologist",
	"ENT",
	"Diabetologist",
	"Cardiologist",
	"Physiotherapist",
	"Endocrinologist",
	"Orthopaedic",
	"Ophthalmologist",
	"Gastroenterologist",
	"Pulmonologist",
	"Psychiatrist",
	"Urologist",
	"Dietitian/Nutritionist",
	"Psychologist",
	"Sexologist",
	"Nephrologist",
	"Neurologist",
	"Oncologist",
	"Ayurveda",
	"Homeopath",
}

// IsKnownSpecialty reports whether name is part of the vocabulary.
func IsKnownSpecialty(name string) bool {
	for _, s := range Specialties {
		if s == name {
			return true
		}
	}
	return false
}
