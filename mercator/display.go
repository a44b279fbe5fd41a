package mercator

import (
	"carto/common"
)

// RegionDisplayer is the one command the helper needs from the host map
// widget: show a region, possibly animated.
type RegionDisplayer interface {
	ShowRegion(region Region, animated bool)
}

// SetCenter computes the region covering center at the requested zoom level
// and tells the displayer to show it. Zoom levels above MaxZoomLevel are
// clamped silently; there is no failure path.
func SetCenter(d RegionDisplayer, center Coordinate, zoomLevel int, viewport common.Dimension, animated bool) {
	if zoomLevel > MaxZoomLevel {
		zoomLevel = MaxZoomLevel
	}
	span := SpanForZoom(center, zoomLevel, viewport)
	d.ShowRegion(Region{Center: center, Span: span}, animated)
}
