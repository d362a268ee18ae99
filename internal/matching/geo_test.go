package matching_test

import (
	"math"
	"testing"

	"github.com/emberdate/ember-backend/internal/matching"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	if d := matching.DistanceKm(52.52, 13.405, 52.52, 13.405); d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestDistanceKm_BerlinToHamburg(t *testing.T) {
	// Berlin to Hamburg is roughly 255 km great-circle.
	d := matching.DistanceKm(52.52, 13.405, 53.551, 9.994)
	if d < 250 || d > 260 {
		t.Errorf("Berlin-Hamburg distance = %f, want ~255", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := matching.DistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
	ba := matching.DistanceKm(34.0522, -118.2437, 40.7128, -74.0060)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", ab, ba)
	}
}
