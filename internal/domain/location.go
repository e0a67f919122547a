package domain

import "strconv"

// LocationSample carries one device position as the stringified decimal
// coordinates the API expects. Samples are sent on demand and never persisted.
type LocationSample struct {
	Latitude  string
	Longitude string
}

func NewLocationSample(latitude, longitude float64) LocationSample {
	return LocationSample{
		Latitude:  strconv.FormatFloat(latitude, 'f', -1, 64),
		Longitude: strconv.FormatFloat(longitude, 'f', -1, 64),
	}
}

func (s LocationSample) IsZero() bool {
	return s.Latitude == "" && s.Longitude == ""
}
