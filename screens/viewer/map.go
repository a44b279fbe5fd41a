package viewer

import (
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2/canvas"
	"github.com/fogleman/gg"

	"carto/common"
	"carto/components/ui"
	"carto/mercator"
	"carto/types"
)

// default view: metropolitan France
var homeCenter = mercator.Coordinate{Lat: 46.6, Long: 2.2}

const homeZoom = 5

type MapArea struct {
	logger    *slog.Logger
	dimension common.Dimension
	view      *ui.MapView

	cities    []types.City
	bookmarks []types.BookmarkModel

	graticuleLayer *canvas.Image
	cityLayer      *canvas.Image
	bookmarkLayer  *canvas.Image
}

func InitMapArea(logger *slog.Logger, dimension common.Dimension) *MapArea {
	return &MapArea{
		logger:    logger,
		dimension: dimension,
	}
}

func (m *MapArea) Render() *ui.MapView {
	m.view = ui.NewMapView(m.dimension.Width, m.dimension.Height)
	m.view.OnRegionChange = func(region mercator.Region) {
		m.redrawLayers(region)
	}
	mercator.SetCenter(m.view, homeCenter, homeZoom, m.dimension, false)
	return m.view
}

func (m *MapArea) Region() mercator.Region {
	return m.view.Region()
}

func (m *MapArea) ZoomLevel() int {
	return mercator.ZoomLevelForRegion(m.view.Region(), m.dimension)
}

func (m *MapArea) JumpTo(coord mercator.Coordinate, zoomLevel int, animated bool) {
	mercator.SetCenter(m.view, coord, zoomLevel, m.dimension, animated)
}

func (m *MapArea) ShowCities(cities []types.City) {
	m.cities = cities
	m.redrawLayers(m.view.Region())
}

func (m *MapArea) ShowBookmarks(bookmarks []types.BookmarkModel) {
	m.bookmarks = bookmarks
	m.redrawLayers(m.view.Region())
}

func (m *MapArea) redrawLayers(region mercator.Region) {
	m.view.RemoveLayer(m.graticuleLayer)
	m.view.RemoveLayer(m.cityLayer)
	m.view.RemoveLayer(m.bookmarkLayer)

	m.graticuleLayer = renderGraticule(region, m.dimension)
	m.view.AddLayer(m.graticuleLayer)

	if len(m.cities) > 0 {
		coords := make([]mercator.Coordinate, 0, len(m.cities))
		for _, city := range m.cities {
			coords = append(coords, city.Coordinate())
		}
		m.cityLayer = types.RenderMarkerLayer(coords, region, m.dimension, color.RGBA{255, 196, 0, 255})
		m.view.AddLayer(m.cityLayer)
	}

	if len(m.bookmarks) > 0 {
		coords := make([]mercator.Coordinate, 0, len(m.bookmarks))
		for _, bookmark := range m.bookmarks {
			coords = append(coords, mercator.Coordinate{Lat: bookmark.Lat, Long: bookmark.Long})
		}
		m.bookmarkLayer = types.RenderMarkerLayer(coords, region, m.dimension, color.RGBA{255, 0, 255, 255})
		m.view.AddLayer(m.bookmarkLayer)
	}
}

// graticuleStep picks a grid spacing giving a dozen lines at most across
// the displayed span.
func graticuleStep(longDelta float64) float64 {
	steps := []float64{45, 30, 15, 10, 5, 2, 1, 0.5, 0.2, 0.1, 0.05, 0.02, 0.01}
	for _, step := range steps {
		if longDelta/step >= 4 {
			return step
		}
	}
	return steps[len(steps)-1]
}

func renderGraticule(region mercator.Region, d common.Dimension) *canvas.Image {
	dc := gg.NewContext(int(d.Width), int(d.Height))
	dc.SetColor(color.RGBA{90, 110, 140, 255})
	dc.SetLineWidth(1)

	left := mercator.LongitudeToPixelX(region.Center.Long - region.Span.LongDelta/2)
	right := mercator.LongitudeToPixelX(region.Center.Long + region.Span.LongDelta/2)
	top := mercator.LatitudeToPixelY(region.Center.Lat + region.Span.LatDelta/2)
	bottom := mercator.LatitudeToPixelY(region.Center.Lat - region.Span.LatDelta/2)

	step := graticuleStep(region.Span.LongDelta)

	minLong := region.Center.Long - region.Span.LongDelta/2
	maxLong := region.Center.Long + region.Span.LongDelta/2
	for long := math.Ceil(minLong/step) * step; long <= maxLong; long += step {
		px := mercator.LongitudeToPixelX(long)
		x := (px - left) / (right - left) * d.Width
		dc.DrawLine(x, 0, x, d.Height)
		dc.Stroke()
	}

	minLat := region.Center.Lat - region.Span.LatDelta/2
	maxLat := region.Center.Lat + region.Span.LatDelta/2
	for lat := math.Ceil(minLat/step) * step; lat <= maxLat; lat += step {
		py := mercator.LatitudeToPixelY(lat)
		y := (py - top) / (bottom - top) * d.Height
		dc.DrawLine(0, y, d.Width, y)
		dc.Stroke()
	}

	img := canvas.NewImageFromImage(dc.Image())
	img.FillMode = canvas.ImageFillContain
	return img
}
