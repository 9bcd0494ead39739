package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/remote"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// PayloadFetcher returns the raw doctor payload from the remote source.
type PayloadFetcher interface {
	FetchPayload(ctx context.Context) ([]byte, error)
}

// PayloadMirror stores the last good payload outside the process.
type PayloadMirror interface {
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// mirrorTimeout bounds each Redis round trip of the mirror.
const mirrorTimeout = 5 * time.Second

// DoctorLoaderService fetches the doctor list once and hands it to the
// repository. Failures are logged and leave the list empty.
type DoctorLoaderService struct {
	fetcher   PayloadFetcher
	mirror    PayloadMirror
	repo      repository.DoctorRepository
	validator *validator.CustomValidator
	log       *logrus.Logger

	wg      conc.WaitGroup
	started atomic.Bool
}

// NewDoctorLoaderService creates the loader. mirror may be nil.
func NewDoctorLoaderService(
	fetcher PayloadFetcher,
	mirror PayloadMirror,
	repo repository.DoctorRepository,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *DoctorLoaderService {
	return &DoctorLoaderService{
		fetcher:   fetcher,
		mirror:    mirror,
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// Start issues the fetch in the background. Only the first call has an effect.
func (s *DoctorLoaderService) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	s.wg.Go(func() {
		if err := s.Load(ctx); err != nil {
			s.log.Warnf("Doctor list unavailable, serving an empty list: %+v", err)
		}
	})
}

// Wait blocks until a started fetch has resolved.
func (s *DoctorLoaderService) Wait() {
	if r := s.wg.WaitAndRecover(); r != nil {
		s.log.Errorf("Doctor loader panicked: %v", r.Value)
	}
}

// Load fetches and decodes the payload synchronously and replaces the list.
// When the fetch fails and a mirror is configured, the mirrored payload is
// used instead.
func (s *DoctorLoaderService) Load(ctx context.Context) error {
	startTime := time.Now()
	defer s.repo.MarkResolved()

	payload, fetchErr := s.fetcher.FetchPayload(ctx)
	fromMirror := false
	if fetchErr != nil {
		if s.mirror == nil {
			return fmt.Errorf("fetch doctors: %w", fetchErr)
		}
		s.log.Warnf("Failed to fetch doctors, trying snapshot: %+v", fetchErr)

		mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		defer cancel()

		var err error
		payload, err = s.mirror.Load(mirrorCtx)
		if err != nil {
			return fmt.Errorf("fetch doctors: %w (snapshot: %v)", fetchErr, err)
		}
		fromMirror = true
	}

	doctors, err := remote.DecodeDoctors(payload, s.validator, s.log)
	if err != nil {
		return fmt.Errorf("decode doctors: %w", err)
	}

	s.repo.ReplaceAll(doctors)
	s.log.Infof("Doctor list loaded: %d doctors in %v (snapshot=%t)", len(doctors), time.Since(startTime), fromMirror)

	if s.mirror != nil && !fromMirror {
		mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		defer cancel()
		if err := s.mirror.Save(mirrorCtx, payload); err != nil {
			s.log.Warnf("Failed to save doctor snapshot: %+v", err)
		}
	}

	return nil
}
