// Package static supplies a fixed position, for walkers on a known beat and
// for exercising the reporter without a GPS feed.
package static

import (
	"context"
	"errors"
	"strconv"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
)

type Source struct {
	sample domain.LocationSample
	valid  bool
}

var _ ports.LocationSource = (*Source)(nil)

var ErrNoFix = errors.New("no location configured")

func NewSource(latitude, longitude string) *Source {
	valid := parses(latitude) && parses(longitude)
	return &Source{
		sample: domain.LocationSample{Latitude: latitude, Longitude: longitude},
		valid:  valid,
	}
}

func (s *Source) Available() bool {
	return s.valid
}

func (s *Source) Sample(ctx context.Context) (domain.LocationSample, error) {
	if err := ctx.Err(); err != nil {
		return domain.LocationSample{}, err
	}
	if !s.valid {
		return domain.LocationSample{}, ErrNoFix
	}

	return s.sample, nil
}

func parses(coordinate string) bool {
	_, err := strconv.ParseFloat(coordinate, 64)
	return err == nil
}
