// Package file reads the current position from a file an external GPS agent
// keeps up to date: a single line "lat lon" (comma separators accepted). A
// missing or unreadable file is the denied-permission case; the reporter will
// refuse to start.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
)

type Source struct {
	path string
}

var _ ports.LocationSource = (*Source)(nil)

var ErrMalformedFix = errors.New("malformed location fix")

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Available() bool {
	_, err := s.read()
	return err == nil
}

func (s *Source) Sample(ctx context.Context) (domain.LocationSample, error) {
	if err := ctx.Err(); err != nil {
		return domain.LocationSample{}, err
	}

	return s.read()
}

func (s *Source) read() (domain.LocationSample, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.LocationSample{}, fmt.Errorf("read location fix: %w", err)
	}

	line := strings.TrimSpace(strings.ReplaceAll(string(data), ",", " "))
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return domain.LocationSample{}, fmt.Errorf("%w: want \"lat lon\", got %q", ErrMalformedFix, line)
	}

	latitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.LocationSample{}, fmt.Errorf("%w: latitude %q", ErrMalformedFix, fields[0])
	}
	longitude, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.LocationSample{}, fmt.Errorf("%w: longitude %q", ErrMalformedFix, fields[1])
	}

	return domain.NewLocationSample(latitude, longitude), nil
}
