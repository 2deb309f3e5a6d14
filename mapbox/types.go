package mapbox

import (
	"errors"
	"fmt"
)

// DefaultBaseURL is the public Directions Matrix endpoint.
const DefaultBaseURL = "https://api.mapbox.com/directions-matrix/v1"

// MaxCoordinates is the largest number of locations one request may carry.
const MaxCoordinates = 25

// Sentinel errors returned by the client.
var (
	ErrNoToken         = errors.New("mapbox: access token is required")
	ErrNoLocations     = errors.New("mapbox: no locations")
	ErrTooManyLocation = fmt.Errorf("mapbox: more than %d locations", MaxCoordinates)
	ErrNotGeocoded     = errors.New("mapbox: location has no coordinates")
	ErrBadProfile      = errors.New("mapbox: unknown profile")
	ErrBadAnnotation   = errors.New("mapbox: unknown annotation")
	ErrStatus          = errors.New("mapbox: unexpected http status")
	ErrResponse        = errors.New("mapbox: invalid response")
)

// Profile is the routing profile of a request.
type Profile string

// Supported routing profiles.
const (
	Driving        Profile = "driving"
	Walking        Profile = "walking"
	Cycling        Profile = "cycling"
	DrivingTraffic Profile = "driving-traffic"
)

// ParseProfile validates a profile name.
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case Driving, Walking, Cycling, DrivingTraffic:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadProfile, s)
	}
}

// Annotation selects which matrix the API returns.
type Annotation string

// Supported annotations: travel time in seconds or road distance in metres.
const (
	Duration Annotation = "duration"
	Distance Annotation = "distance"
)

// ParseAnnotation validates an annotation name.
func ParseAnnotation(s string) (Annotation, error) {
	switch a := Annotation(s); a {
	case Duration, Distance:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadAnnotation, s)
	}
}

// response is the subset of the API response the client reads.
// Matrix cells are pointers because the API sends null for "no route".
type response struct {
	Code      string       `json:"code"`
	Message   string       `json:"message,omitempty"`
	Durations [][]*float64 `json:"durations,omitempty"`
	Distances [][]*float64 `json:"distances,omitempty"`
}
