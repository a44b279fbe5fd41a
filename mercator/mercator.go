package mercator

import "math"

// mercator.go contains the conversions between geographic coordinates and
// the Web-Mercator pixel space used by the map view. The whole world is a
// square of side 2*MercatorOffset pixels at the projection's deepest
// internal zoom.

const (
	// MercatorOffset is half the pixel width of the world.
	MercatorOffset = 268435456.0
	// MercatorRadius is the pixel radius of the projection (offset / pi).
	MercatorRadius = 85445659.44705395
)

// LongitudeToPixelX converts a longitude in degrees to a pixel X position.
func LongitudeToPixelX(longitude float64) float64 {
	return math.Round(MercatorOffset + MercatorRadius*longitude*math.Pi/180.0)
}

// LatitudeToPixelY converts a latitude in degrees to a pixel Y position.
// The poles are special-cased to the exact edges of pixel space, where the
// formula would otherwise take the log of zero.
func LatitudeToPixelY(latitude float64) float64 {
	if latitude == 90.0 {
		return 0
	}
	if latitude == -90.0 {
		return MercatorOffset * 2
	}
	s := math.Sin(latitude * math.Pi / 180.0)
	return math.Round(MercatorOffset - MercatorRadius*math.Log((1+s)/(1-s))/2)
}

// PixelXToLongitude converts a pixel X position back to a longitude in degrees.
func PixelXToLongitude(pixelX float64) float64 {
	return ((math.Round(pixelX) - MercatorOffset) / MercatorRadius) * 180.0 / math.Pi
}

// PixelYToLatitude converts a pixel Y position back to a latitude in degrees.
// No pole special-case is needed: atan saturates on its own.
func PixelYToLatitude(pixelY float64) float64 {
	return (math.Pi/2 - 2*math.Atan(math.Exp((math.Round(pixelY)-MercatorOffset)/MercatorRadius))) * 180.0 / math.Pi
}
