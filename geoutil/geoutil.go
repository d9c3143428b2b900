// Package geoutil holds the small geographic helpers shared by the planner
// and the shell: great-circle distance in miles, initial bearing, compass
// buckets, and degrees-minutes-seconds formatting.
//
// Points are orb.Point values, which store {longitude, latitude}.
package geoutil

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// MetersPerMile converts orb/geo distances (meters) to statute miles.
const MetersPerMile = 1609.344

// compass lists the 8-point directions clockwise from north.
var compass = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DistanceMiles returns the haversine distance between a and b in miles.
func DistanceMiles(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) / MetersPerMile
}

// Bearing returns the initial bearing from a to b in degrees, normalized to [0, 360).
func Bearing(a, b orb.Point) float64 {
	deg := math.Mod(geo.Bearing(a, b), 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// Direction buckets a bearing in degrees into one of N, NE, E, SE, S, SW, W, NW.
func Direction(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	idx := int(math.Floor((b+22.5)/45)) % len(compass)

	return compass[idx]
}

// FormatDMS renders a coordinate pair as `38d 30' 0" N, 121d 45' 36" W`.
// Seconds are rounded to the nearest whole second.
func FormatDMS(lat, lon float64) string {
	return formatAxis(lat, "N", "S") + ", " + formatAxis(lon, "E", "W")
}

func formatAxis(v float64, pos, neg string) string {
	hemi := pos
	if v < 0 {
		hemi = neg
	}
	total := int64(math.Round(math.Abs(v) * 3600))
	deg := total / 3600
	min := (total % 3600) / 60
	sec := total % 60

	return fmt.Sprintf("%dd %d' %d\" %s", deg, min, sec, hemi)
}
