package citymap

import "errors"

// ErrInvalidSize is returned when a map is requested with fewer than one city,
// or when a replicate set is requested with a non-positive count.
var ErrInvalidSize = errors.New("citymap: size must be >= 1")

// ErrDuplicateCity is returned when two cities share an identifier.
var ErrDuplicateCity = errors.New("citymap: duplicate city identifier")

// ErrInvalidCoordinate is returned for NaN or infinite coordinates, and for
// points so far apart that their distance overflows.
var ErrInvalidCoordinate = errors.New("citymap: coordinate must be finite")

const (
	// DefaultWidth and DefaultHeight bound the plane used by New.
	DefaultWidth  = 900.0
	DefaultHeight = 600.0

	// DefaultSeed feeds the generator when no RNG option is supplied.
	DefaultSeed int64 = 42
)

// City is a point on the plane with a stable identifier.
type City struct {
	ID int
	X  float64
	Y  float64
}
