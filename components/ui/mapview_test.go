package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"carto/mercator"
)

func TestShowRegionUpdatesDisplayedRegion(t *testing.T) {
	test.NewApp()
	m := NewMapView(320, 320)

	region := mercator.RegionForZoom(mercator.Coordinate{Lat: 48.8566, Long: 2.3522}, 12, m.ViewportSize())
	m.ShowRegion(region, false)

	if m.Region() != region {
		t.Errorf("displayed region = %+v, want %+v", m.Region(), region)
	}
}

func TestTappedReportsCoordinateUnderCursor(t *testing.T) {
	test.NewApp()
	m := NewMapView(320, 320)
	mercator.SetCenter(m, mercator.Coordinate{Lat: 48.8566, Long: 2.3522}, 12, m.ViewportSize(), false)

	var got mercator.Coordinate
	m.OnTap = func(coord mercator.Coordinate) {
		got = coord
	}
	m.Tapped(&fyne.PointEvent{Position: fyne.NewPos(160, 160)})

	if math.Abs(got.Lat-48.8566) > 1e-2 || math.Abs(got.Long-2.3522) > 1e-2 {
		t.Errorf("tap at the viewport center reported %+v", got)
	}
}

func TestScrolledStepsZoomLevel(t *testing.T) {
	test.NewApp()
	m := NewMapView(320, 320)
	mercator.SetCenter(m, mercator.Coordinate{Lat: 48.8566, Long: 2.3522}, 12, m.ViewportSize(), false)

	m.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 1)})
	if got := mercator.ZoomLevelForRegion(m.Region(), m.ViewportSize()); got != 13 {
		t.Errorf("zoom after scroll up = %d, want 13", got)
	}

	m.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -1)})
	if got := mercator.ZoomLevelForRegion(m.Region(), m.ViewportSize()); got != 12 {
		t.Errorf("zoom after scroll down = %d, want 12", got)
	}
}

func TestScrolledDoesNotZoomBelowZero(t *testing.T) {
	test.NewApp()
	m := NewMapView(320, 320)
	mercator.SetCenter(m, mercator.Coordinate{}, 0, m.ViewportSize(), false)

	m.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -1)})
	if got := mercator.ZoomLevelForRegion(m.Region(), m.ViewportSize()); got != 0 {
		t.Errorf("zoom after scroll down at world view = %d, want 0", got)
	}
}
