package mercator

import (
	"math"
	"testing"
)

// one pixel of the world square, in degrees of longitude
const pixelDegrees = 360.0 / (2 * MercatorOffset)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestLongitudeRoundTrip(t *testing.T) {
	longitudes := []float64{-179.99, -122.6789, -74.0, -2.35, 0, 2.3522, 90, 151.21, 179.99, 180}

	for _, long := range longitudes {
		got := PixelXToLongitude(LongitudeToPixelX(long))
		if !almostEqual(got, long, pixelDegrees) {
			t.Errorf("longitude %f round-tripped to %f", long, got)
		}
	}
}

func TestLatitudeRoundTrip(t *testing.T) {
	latitudes := []float64{-85.0511, -66.6, -33.87, -0.5, 0, 40.7, 48.8566, 66.6, 85.0511}

	for _, lat := range latitudes {
		got := PixelYToLatitude(LatitudeToPixelY(lat))
		if !almostEqual(got, lat, pixelDegrees) {
			t.Errorf("latitude %f round-tripped to %f", lat, got)
		}
	}
}

func TestPoleEdges(t *testing.T) {
	if got := LatitudeToPixelY(90.0); got != 0 {
		t.Errorf("north pole maps to pixel %f, want 0", got)
	}
	if got := LatitudeToPixelY(-90.0); got != 2*MercatorOffset {
		t.Errorf("south pole maps to pixel %f, want %f", got, 2.0*MercatorOffset)
	}
}

func TestOriginMapsToWorldCenter(t *testing.T) {
	if got := LongitudeToPixelX(0); got != MercatorOffset {
		t.Errorf("longitude 0 maps to pixel %f, want %f", got, float64(MercatorOffset))
	}
	if got := LatitudeToPixelY(0); got != MercatorOffset {
		t.Errorf("latitude 0 maps to pixel %f, want %f", got, float64(MercatorOffset))
	}
}

func TestPixelYToLatitudeSaturates(t *testing.T) {
	// far outside the world square the inverse must stay finite
	for _, py := range []float64{-10 * MercatorOffset, 10 * MercatorOffset} {
		got := PixelYToLatitude(py)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("pixel %f produced non-finite latitude %f", py, got)
		}
		if got < -90 || got > 90 {
			t.Errorf("pixel %f produced out-of-range latitude %f", py, got)
		}
	}
}
