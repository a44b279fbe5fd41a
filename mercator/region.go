package mercator

import (
	"math"

	"carto/common"
)

// zoomExponentBase anchors integer zoom levels: at zoom 20 one viewport
// pixel covers exactly one pixel of the projection's pixel space.
const zoomExponentBase = 20

// MaxZoomLevel is the deepest zoom SetCenter will request.
const MaxZoomLevel = 28

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Lat  float64
	Long float64
}

// Span is the angular width and height of a displayed region, in degrees.
type Span struct {
	LatDelta  float64
	LongDelta float64
}

// Region is a displayed map viewport: a center coordinate and the angular
// extent visible around it.
type Region struct {
	Center Coordinate
	Span   Span
}

func zoomScale(zoomLevel int) float64 {
	return math.Pow(2, float64(zoomExponentBase-zoomLevel))
}

// SpanForZoom returns the angular extent a viewport of the given pixel size
// displays around center at the given zoom level.
func SpanForZoom(center Coordinate, zoomLevel int, viewport common.Dimension) Span {
	centerPixelX := LongitudeToPixelX(center.Long)
	centerPixelY := LatitudeToPixelY(center.Lat)

	scale := zoomScale(zoomLevel)
	scaledMapWidth := viewport.Width * scale
	scaledMapHeight := viewport.Height * scale

	topLeftPixelX := centerPixelX - scaledMapWidth/2
	topLeftPixelY := centerPixelY - scaledMapHeight/2

	minLong := PixelXToLongitude(topLeftPixelX)
	maxLong := PixelXToLongitude(topLeftPixelX + scaledMapWidth)
	longDelta := maxLong - minLong

	// pixel Y grows southward, so the raw subtraction has the wrong sign
	minLat := PixelYToLatitude(topLeftPixelY)
	maxLat := PixelYToLatitude(topLeftPixelY + scaledMapHeight)
	latDelta := -1 * (maxLat - minLat)

	return Span{LatDelta: latDelta, LongDelta: longDelta}
}

// RegionForZoom returns the region a viewport of the given size displays
// when centered on center at the given zoom level.
//
// Latitude is clamped to [-90, 90]. Longitude is reduced with a plain
// modulo 180, which does not wrap values outside (-360, 360) into
// (-180, 180]; kept as-is for compatibility with the original widget.
func RegionForZoom(center Coordinate, zoomLevel int, viewport common.Dimension) Region {
	lat := math.Min(math.Max(-90, center.Lat), 90)
	long := math.Mod(center.Long, 180)

	centerPixelX := LongitudeToPixelX(long)
	centerPixelY := LatitudeToPixelY(lat)

	scale := zoomScale(zoomLevel)
	scaledMapWidth := viewport.Width * scale
	scaledMapHeight := viewport.Height * scale

	topLeftPixelX := centerPixelX - scaledMapWidth/2

	minLong := PixelXToLongitude(topLeftPixelX)
	maxLong := PixelXToLongitude(topLeftPixelX + scaledMapWidth)
	longDelta := maxLong - minLong

	topPixelY := centerPixelY - scaledMapHeight/2
	bottomPixelY := centerPixelY + scaledMapHeight/2

	// a viewport reaching past the south edge of pixel space cannot be
	// drawn; pin it to the edge and keep its full height above the center
	adjusted := false
	if topPixelY > MercatorOffset*2 {
		topPixelY = centerPixelY - scaledMapHeight
		bottomPixelY = MercatorOffset * 2
		adjusted = true
	}

	minLat := PixelYToLatitude(topPixelY)
	maxLat := PixelYToLatitude(bottomPixelY)
	latDelta := -1 * (maxLat - minLat)

	region := Region{
		Center: Coordinate{Lat: lat, Long: long},
		Span:   Span{LatDelta: latDelta, LongDelta: longDelta},
	}

	if adjusted {
		region.Center.Lat = PixelYToLatitude((topPixelY + bottomPixelY) / 2)
	}

	return region
}

// ZoomLevelForRegion derives the integer zoom level at which a viewport of
// the given size displays region. It is the algebraic inverse of the
// zoom/scale relation used by SpanForZoom, truncated toward zero.
func ZoomLevelForRegion(region Region, viewport common.Dimension) int {
	centerPixelX := LongitudeToPixelX(region.Center.Long)
	leftEdgePixelX := LongitudeToPixelX(region.Center.Long - region.Span.LongDelta/2)

	scaledMapWidth := (centerPixelX - leftEdgePixelX) * 2
	scale := scaledMapWidth / viewport.Width

	return int(float64(zoomExponentBase) - math.Log2(scale))
}
