package handler

import (
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type DoctorHandler struct {
	listingUsecase usecase.DoctorListingUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(listingUsecase usecase.DoctorListingUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		listingUsecase: listingUsecase,
		validator:      validator,
	}
}

// GetDoctors lists doctors for the filter state carried in the query string.
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.DoctorQueryRequest{
		Name:      query.Get(entity.QueryKeyName),
		Mode:      query.Get(entity.QueryKeyMode),
		Specialty: query.Get(entity.QueryKeySpecialty),
		Sort:      query.Get(entity.QueryKeySort),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.listingUsecase.ListDoctors(r.Context(), service.NewQueryStateStore(query))
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	req := dto.SuggestionRequest{
		Name: r.URL.Query().Get(entity.QueryKeyName),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.listingUsecase.SuggestDoctors(r.Context(), req.Name)
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Vocabulary retrieved successfully", h.listingUsecase.Vocabulary(r.Context()))
}
