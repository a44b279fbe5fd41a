package mercator

import (
	"math"
	"testing"

	"carto/common"
)

// 320 viewport pixels at zoom 20, in degrees (320 * 360 / 2^29)
const span320Zoom20 = 0.00021457672119140625

func TestSpanForZoomRegression(t *testing.T) {
	viewport := common.Dimension{Width: 320, Height: 320}
	span := SpanForZoom(Coordinate{Lat: 0, Long: 0}, 20, viewport)

	if !almostEqual(span.LongDelta, span320Zoom20, 1e-12) {
		t.Errorf("longitude delta = %.18f, want %.18f", span.LongDelta, span320Zoom20)
	}
	if !almostEqual(span.LatDelta, span320Zoom20, 1e-9) {
		t.Errorf("latitude delta = %.18f, want %.18f", span.LatDelta, span320Zoom20)
	}
}

func TestSpanForZoomHalvesPerLevel(t *testing.T) {
	center := Coordinate{Lat: 48.8566, Long: 2.3522}
	viewport := common.Dimension{Width: 600, Height: 600}

	for zoom := 11; zoom < 15; zoom++ {
		wide := SpanForZoom(center, zoom, viewport)
		tight := SpanForZoom(center, zoom+1, viewport)

		longRatio := wide.LongDelta / tight.LongDelta
		latRatio := wide.LatDelta / tight.LatDelta

		if !almostEqual(longRatio, 2, 1e-9) {
			t.Errorf("zoom %d -> %d longitude ratio = %f, want 2", zoom, zoom+1, longRatio)
		}
		if !almostEqual(latRatio, 2, 1e-4) {
			t.Errorf("zoom %d -> %d latitude ratio = %f, want 2", zoom, zoom+1, latRatio)
		}
	}
}

func TestZoomLevelForRegionInvertsRegionForZoom(t *testing.T) {
	tests := []struct {
		name   string
		center Coordinate
		zoom   int
	}{
		{"equator", Coordinate{Lat: 0, Long: 0}, 10},
		{"paris", Coordinate{Lat: 48.8566, Long: 2.3522}, 13},
		{"sydney", Coordinate{Lat: -33.87, Long: 151.21}, 7},
		{"new york", Coordinate{Lat: 40.7, Long: -74.0}, 16},
	}

	viewport := common.Dimension{Width: 640, Height: 480}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := RegionForZoom(tt.center, tt.zoom, viewport)
			if got := ZoomLevelForRegion(region, viewport); got != tt.zoom {
				t.Errorf("got zoom %d, want %d", got, tt.zoom)
			}
		})
	}
}

func TestZoomLevelForRegionTruncates(t *testing.T) {
	viewport := common.Dimension{Width: 600, Height: 600}
	region := RegionForZoom(Coordinate{Lat: 48.8566, Long: 2.3522}, 13, viewport)

	// on a slightly wider viewport the scale lands just above a power of
	// two; a rounding implementation would answer 13
	narrower := common.Dimension{Width: 599, Height: 600}
	if got := ZoomLevelForRegion(region, narrower); got != 12 {
		t.Errorf("got zoom %d, want 12", got)
	}
}

func TestRegionForZoomClampsAtSouthPole(t *testing.T) {
	center := Coordinate{Lat: -87.5, Long: 0}
	viewport := common.Dimension{Width: 320, Height: 320}

	region := RegionForZoom(center, 2, viewport)

	if region.Center.Lat == center.Lat {
		t.Fatal("center latitude was not adjusted")
	}
	if region.Center.Lat < center.Lat {
		t.Errorf("adjusted center %f is south of the input %f", region.Center.Lat, center.Lat)
	}
	if region.Span.LatDelta <= 0 {
		t.Errorf("clamped latitude delta = %f, want > 0", region.Span.LatDelta)
	}

	// the clamp must shrink the vertical extent relative to the raw span
	raw := SpanForZoom(center, 2, viewport)
	if region.Span.LatDelta >= raw.LatDelta {
		t.Errorf("clamped latitude delta %f not smaller than raw %f", region.Span.LatDelta, raw.LatDelta)
	}
}

func TestRegionForZoomClampsLatitude(t *testing.T) {
	viewport := common.Dimension{Width: 320, Height: 320}

	north := RegionForZoom(Coordinate{Lat: 123, Long: 0}, 8, viewport)
	if north.Center.Lat != 90 {
		t.Errorf("latitude 123 clamped to %f, want 90", north.Center.Lat)
	}

	wrapped := RegionForZoom(Coordinate{Lat: 0, Long: 190}, 8, viewport)
	if wrapped.Center.Long != 10 {
		t.Errorf("longitude 190 reduced to %f, want 10", wrapped.Center.Long)
	}
}

type regionRecorder struct {
	region   Region
	animated bool
	calls    int
}

func (r *regionRecorder) ShowRegion(region Region, animated bool) {
	r.region = region
	r.animated = animated
	r.calls++
}

func TestSetCenterClampsZoom(t *testing.T) {
	center := Coordinate{Lat: 48.8566, Long: 2.3522}
	viewport := common.Dimension{Width: 320, Height: 320}

	overMax := &regionRecorder{}
	atMax := &regionRecorder{}
	SetCenter(overMax, center, 50, viewport, false)
	SetCenter(atMax, center, MaxZoomLevel, viewport, false)

	if overMax.calls != 1 || atMax.calls != 1 {
		t.Fatal("displayer was not commanded exactly once")
	}
	if overMax.region != atMax.region {
		t.Errorf("zoom 50 showed %+v, zoom %d showed %+v", overMax.region, MaxZoomLevel, atMax.region)
	}
}

func TestSetCenterPassesAnimationFlag(t *testing.T) {
	rec := &regionRecorder{}
	viewport := common.Dimension{Width: 320, Height: 320}

	SetCenter(rec, Coordinate{Lat: 0, Long: 0}, 5, viewport, true)
	if !rec.animated {
		t.Error("animated flag was dropped")
	}
	if rec.region.Center != (Coordinate{Lat: 0, Long: 0}) {
		t.Errorf("region centered on %+v, want origin", rec.region.Center)
	}
	if math.Abs(rec.region.Span.LongDelta) <= 0 {
		t.Errorf("span is degenerate: %+v", rec.region.Span)
	}
}
