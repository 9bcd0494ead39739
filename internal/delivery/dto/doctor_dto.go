package dto

import "github.com/shopspring/decimal"

// Request DTOs

// DoctorQueryRequest mirrors the URL query keys of the filter state.
type DoctorQueryRequest struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	Mode      string `json:"moc" validate:"omitempty,max=50"`
	Specialty string `json:"specialty" validate:"omitempty,specialties"`
	Sort      string `json:"sort" validate:"omitempty,oneof=fees experience"`
}

type SuggestionRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	Name            string          `json:"name"`
	Mode            string          `json:"mode"`
	Speciality      []string        `json:"speciality"`
	Experience      int             `json:"experience"`
	ExperienceLabel string          `json:"experience_label"`
	Fees            decimal.Decimal `json:"fees"`
	FeeLabel        string          `json:"fee_label"`
	Qualification   string          `json:"qualification"`
	Hospital        string          `json:"hospital"`
	Location        string          `json:"location"`
	Languages       []string        `json:"languages"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Query   string           `json:"query"`
	Loaded  bool             `json:"loaded"`
	// Pending is set until the start-up fetch has finished.
	Pending bool             `json:"pending"`
}

type SuggestionResponse struct {
	Name       string   `json:"name"`
	Speciality []string `json:"speciality"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type VocabularyResponse struct {
	Specialties []string `json:"specialties"`
	Modes       []string `json:"modes"`
	Sorts       []string `json:"sorts"`
}
