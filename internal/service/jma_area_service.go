package service

import (
	"context"
	"errors"

	"jma-area-api/internal/models"
	"jma-area-api/internal/observability"

	"github.com/rs/zerolog/log"
)

var (
	ErrMissingCoordinates  = errors.New("service: latitude or longitude is missing")
	ErrAreaCodeNotResolved = errors.New("service: could not resolve area code")
	ErrAreaNotFound        = errors.New("service: area code not in code table")
)

// AreaCodeResolver turns coordinates into a municipality code, 0 meaning no match.
type AreaCodeResolver interface {
	Resolve(ctx context.Context, latitude, longitude string) (int, error)
}

// CodeTableRepository looks up municipalities by code.
type CodeTableRepository interface {
	FindByMuniCode(code int) (models.CodeInfo, bool)
}

// JMAAreaService maps coordinates to the municipality and JMA areas covering them
type JMAAreaService struct {
	resolver AreaCodeResolver
	repo     CodeTableRepository
	metrics  *observability.Metrics
}

// NewJMAAreaService creates a new JMA area service
func NewJMAAreaService(resolver AreaCodeResolver, repo CodeTableRepository, metrics *observability.Metrics) *JMAAreaService {
	return &JMAAreaService{resolver: resolver, repo: repo, metrics: metrics}
}

// LookupArea resolves the coordinates to a municipality code and returns its code table entry.
// Coordinates are passed to the geocoder verbatim.
func (s *JMAAreaService) LookupArea(ctx context.Context, latitude, longitude string) (*models.CodeInfo, error) {
	if latitude == "" || longitude == "" {
		s.record("missing_coordinates")
		return nil, ErrMissingCoordinates
	}

	code, err := s.resolver.Resolve(ctx, latitude, longitude)
	if err != nil {
		// Upstream failures surface the same way as "no match"; keep the cause in the log.
		log.Warn().Err(err).Str("latitude", latitude).Str("longitude", longitude).Msg("reverse geocoding failed")
	}
	if code == 0 {
		s.record("unresolved")
		return nil, ErrAreaCodeNotResolved
	}

	info, ok := s.repo.FindByMuniCode(code)
	if !ok {
		log.Warn().Int("code", code).Msg("resolved municipality code missing from code table")
		s.record("not_found")
		return nil, ErrAreaNotFound
	}

	s.record("success")
	return &info, nil
}

func (s *JMAAreaService) record(outcome string) {
	s.metrics.LookupRequests.WithLabelValues(outcome).Inc()
}
