// internal/matching/geo.go

package matching

import (
	"math"

	"github.com/emberdate/ember-backend/internal/profile"
)

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance in kilometers between two
// coordinates using the Haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// profileDistanceKm computes the distance between two profiles, or
// math.MaxFloat64 when either side has no location, pushing locationless
// pairs to the end of distance-sorted listings.
func profileDistanceKm(a, b *profile.Profile) float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return math.MaxFloat64
	}
	return DistanceKm(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
}
