package usecase

import (
	"context"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

// DoctorListingUsecase derives the views of the doctor directory from the
// fetched list and a query state.
type DoctorListingUsecase interface {
	ListDoctors(ctx context.Context, store *service.QueryStateStore) (*dto.DoctorListResponse, error)
	SuggestDoctors(ctx context.Context, name string) (*dto.SuggestionListResponse, error)
	Vocabulary(ctx context.Context) *dto.VocabularyResponse
}

type doctorListingUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	match           entity.SpecialtyMatch
	suggestionLimit int
}

func NewDoctorListingUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	match entity.SpecialtyMatch,
	suggestionLimit int,
) DoctorListingUsecase {
	if suggestionLimit <= 0 {
		suggestionLimit = DefaultSuggestionLimit
	}
	return &doctorListingUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		match:           match,
		suggestionLimit: suggestionLimit,
	}
}

func (u *doctorListingUsecase) ListDoctors(ctx context.Context, store *service.QueryStateStore) (*dto.DoctorListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := store.State()
	doctors := FilterDoctors(u.doctorRepo.FindAll(), state, u.match)
	u.log.Debugf("Filtered doctors: query=%q match=%s count=%d", store.Encode(), u.match, len(doctors))

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Query:   store.Encode(),
		Loaded:  u.doctorRepo.Loaded(),
		Pending: !u.doctorRepo.Resolved(),
	}, nil
}

func (u *doctorListingUsecase) SuggestDoctors(ctx context.Context, name string) (*dto.SuggestionListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doctors := SuggestDoctors(u.doctorRepo.FindAll(), name, u.suggestionLimit)

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToSuggestions(doctors),
	}, nil
}

func (u *doctorListingUsecase) Vocabulary(ctx context.Context) *dto.VocabularyResponse {
	return &dto.VocabularyResponse{
		Specialties: entity.Specialties,
		Modes:       entity.ConsultationModes,
		Sorts:       []string{string(entity.SortByFees), string(entity.SortByExperience)},
	}
}
