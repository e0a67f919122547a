package ports

import (
	"context"

	"github.com/paseo-app/paseo-cli/internal/domain"
)

// LocationSource supplies the device position. Available is the start-time
// gate: when it reports false the reporter refuses to start, the equivalent
// of a denied location permission on a handset.
type LocationSource interface {
	Available() bool
	Sample(ctx context.Context) (domain.LocationSample, error)
}
