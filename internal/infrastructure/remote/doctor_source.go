package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from doctor source")
	ErrNotAList         = errors.New("doctor payload is not a JSON array")
)

// maxPayloadSize bounds the body read from the doctor source.
const maxPayloadSize = 16 << 20

// DoctorSource reads the doctor directory from a fixed URL.
type DoctorSource struct {
	client *http.Client
	url    string
	log    *logrus.Logger
}

func NewDoctorSource(cfg config.SourceConfig, log *logrus.Logger) *DoctorSource {
	return &DoctorSource{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
		log:    log,
	}
}

// FetchPayload issues a single GET and returns the raw body.
func (s *DoctorSource) FetchPayload(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	s.log.Debugf("Fetched doctor payload: url=%s bytes=%d", s.url, len(body))
	return body, nil
}

// DecodeDoctors decodes a JSON array of doctors. Records that are not
// objects or fail validation are skipped and logged; they never fail the
// whole payload.
func DecodeDoctors(payload []byte, v *validator.CustomValidator, log *logrus.Logger) ([]entity.Doctor, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAList, err)
	}

	doctors := make([]entity.Doctor, 0, len(records))
	for i, record := range records {
		var d entity.Doctor
		if err := json.Unmarshal(record, &d); err != nil {
			log.Warnf("Skipping doctor record %d: %+v", i, err)
			continue
		}
		if err := v.Validate(&d); err != nil {
			log.Warnf("Skipping doctor record %d: %v", i, v.FormatValidationErrors(err))
			continue
		}
		doctors = append(doctors, d)
	}

	return doctors, nil
}
