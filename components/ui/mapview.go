package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"carto/common"
	"carto/mercator"
)

// MapView is the host widget the projection helper drives. It owns the
// currently displayed region and stacks raster layers rendered by the
// screens on top of a plain background.
type MapView struct {
	widget.BaseWidget
	size       fyne.Size
	region     mercator.Region
	background *canvas.Rectangle
	layers     []*canvas.Image
	tooltip    *canvas.Text
	hoverTimer *time.Timer
	animation  *fyne.Animation

	OnTap          func(coord mercator.Coordinate)
	OnRegionChange func(region mercator.Region)
}

var _ desktop.Hoverable = (*MapView)(nil)
var _ fyne.Scrollable = (*MapView)(nil)
var _ mercator.RegionDisplayer = (*MapView)(nil)

func NewMapView(width, height float64) *MapView {
	tooltip := canvas.NewText("", color.White)
	tooltip.TextSize = 12
	tooltip.Hidden = true

	m := &MapView{
		size:       fyne.NewSize(float32(width), float32(height)),
		background: canvas.NewRectangle(color.RGBA{16, 28, 46, 255}),
		tooltip:    tooltip,
	}
	m.region = mercator.RegionForZoom(mercator.Coordinate{}, 1, m.ViewportSize())
	m.ExtendBaseWidget(m)
	return m
}

func (m *MapView) ViewportSize() common.Dimension {
	return common.DimensionFromSize(m.size)
}

// Region is the currently displayed region, readable by the helper as the
// input of ZoomLevelForRegion.
func (m *MapView) Region() mercator.Region {
	return m.region
}

// ShowRegion implements mercator.RegionDisplayer. Animated calls
// interpolate center and span from the current region.
func (m *MapView) ShowRegion(region mercator.Region, animated bool) {
	if m.animation != nil {
		m.animation.Stop()
		m.animation = nil
	}
	if !animated {
		m.applyRegion(region)
		return
	}

	from := m.region
	m.animation = fyne.NewAnimation(300*time.Millisecond, func(done float32) {
		t := float64(done)
		m.applyRegion(mercator.Region{
			Center: mercator.Coordinate{
				Lat:  from.Center.Lat + (region.Center.Lat-from.Center.Lat)*t,
				Long: from.Center.Long + (region.Center.Long-from.Center.Long)*t,
			},
			Span: mercator.Span{
				LatDelta:  from.Span.LatDelta + (region.Span.LatDelta-from.Span.LatDelta)*t,
				LongDelta: from.Span.LongDelta + (region.Span.LongDelta-from.Span.LongDelta)*t,
			},
		})
	})
	m.animation.Curve = fyne.AnimationEaseInOut
	m.animation.Start()
}

func (m *MapView) applyRegion(region mercator.Region) {
	m.region = region
	if m.OnRegionChange != nil {
		m.OnRegionChange(region)
	}
	m.Refresh()
}

// CoordinateAt converts a widget position to the geographic coordinate
// displayed there, through the inverse pixel-space conversions.
func (m *MapView) CoordinateAt(pos fyne.Position) mercator.Coordinate {
	d := m.ViewportSize()

	left := mercator.LongitudeToPixelX(m.region.Center.Long - m.region.Span.LongDelta/2)
	right := mercator.LongitudeToPixelX(m.region.Center.Long + m.region.Span.LongDelta/2)
	top := mercator.LatitudeToPixelY(m.region.Center.Lat + m.region.Span.LatDelta/2)
	bottom := mercator.LatitudeToPixelY(m.region.Center.Lat - m.region.Span.LatDelta/2)

	px := left + (right-left)*float64(pos.X)/d.Width
	py := top + (bottom-top)*float64(pos.Y)/d.Height

	return mercator.Coordinate{
		Lat:  mercator.PixelYToLatitude(py),
		Long: mercator.PixelXToLongitude(px),
	}
}

func (m *MapView) AddLayer(img *canvas.Image) {
	m.layers = append(m.layers, img)
	m.Refresh()
}

func (m *MapView) RemoveLayer(img *canvas.Image) {
	layerIndex := -1
	for i := range m.layers {
		if m.layers[i] == img {
			layerIndex = i
			break
		}
	}

	if layerIndex != -1 {
		copy(m.layers[layerIndex:], m.layers[layerIndex+1:])
		m.layers[len(m.layers)-1] = nil // avoid memory leak
		m.layers = m.layers[:len(m.layers)-1]
	}
}

func (m *MapView) MinSize() fyne.Size {
	return m.size
}

func (m *MapView) Tapped(ev *fyne.PointEvent) {
	if m.OnTap != nil {
		m.OnTap(m.CoordinateAt(ev.Position))
	}
}

// Scrolled steps the zoom level derived from the displayed region and asks
// the helper to recenter at the new level.
func (m *MapView) Scrolled(ev *fyne.ScrollEvent) {
	zoom := mercator.ZoomLevelForRegion(m.region, m.ViewportSize())
	if ev.Scrolled.DY > 0 {
		zoom++
	} else {
		zoom--
	}
	if zoom < 0 {
		zoom = 0
	}
	mercator.SetCenter(m, m.region.Center, zoom, m.ViewportSize(), false)
}

func (m *MapView) MouseIn(ev *desktop.MouseEvent) {
	m.updateTooltip(ev.Position)
}

func (m *MapView) MouseMoved(ev *desktop.MouseEvent) {
	m.updateTooltip(ev.Position)
}

func (m *MapView) MouseOut() {
	m.tooltip.Hidden = true
	m.tooltip.Refresh()
}

func (m *MapView) updateTooltip(pos fyne.Position) {
	if m.hoverTimer != nil {
		m.hoverTimer.Stop()
	}
	m.hoverTimer = time.AfterFunc(200*time.Millisecond, func() {
		fyne.Do(func() {
			coord := m.CoordinateAt(pos)
			m.tooltip.Text = fmt.Sprintf("%.4f, %.4f", coord.Lat, coord.Long)
			m.tooltip.Hidden = false
			m.tooltip.Move(fyne.NewPos(pos.X+10, pos.Y-20))
			m.tooltip.Refresh()
		})
	})
}

func (m *MapView) CreateRenderer() fyne.WidgetRenderer {
	return &mapViewRenderer{m: m}
}

type mapViewRenderer struct {
	m *MapView
}

func (r *mapViewRenderer) Layout(size fyne.Size) {
	r.m.background.Resize(size)
	r.m.background.Move(fyne.NewPos(0, 0))
	for _, l := range r.m.layers {
		l.Resize(size)
		l.Move(fyne.NewPos(0, 0))
	}
}

func (r *mapViewRenderer) MinSize() fyne.Size {
	return r.m.size
}

func (r *mapViewRenderer) Refresh() {
	r.m.background.Refresh()
	for _, l := range r.m.layers {
		l.Refresh()
	}
	r.m.tooltip.Refresh()
}

func (r *mapViewRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.m.background}
	for _, l := range r.m.layers {
		objs = append(objs, l)
	}
	objs = append(objs, r.m.tooltip)
	return objs
}

func (r *mapViewRenderer) Destroy() {}
