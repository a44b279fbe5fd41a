package types

import (
	"image/color"

	"fyne.io/fyne/v2/canvas"
	"github.com/fogleman/gg"

	"carto/common"
	"carto/mercator"
)

type City struct {
	Name       string
	Lat        float64
	Long       float64
	Population int64
}

func (c City) Coordinate() mercator.Coordinate {
	return mercator.Coordinate{Lat: c.Lat, Long: c.Long}
}

// RenderMarkerLayer rasterizes one dot per coordinate into an image layer,
// positioned inside the currently displayed region. Coordinates outside the
// region are skipped.
func RenderMarkerLayer(coords []mercator.Coordinate, region mercator.Region, d common.Dimension, markerColor color.Color) *canvas.Image {
	dc := gg.NewContext(int(d.Width), int(d.Height))
	dc.SetColor(markerColor)

	left := mercator.LongitudeToPixelX(region.Center.Long - region.Span.LongDelta/2)
	right := mercator.LongitudeToPixelX(region.Center.Long + region.Span.LongDelta/2)
	top := mercator.LatitudeToPixelY(region.Center.Lat + region.Span.LatDelta/2)
	bottom := mercator.LatitudeToPixelY(region.Center.Lat - region.Span.LatDelta/2)

	for _, coord := range coords {
		px := mercator.LongitudeToPixelX(coord.Long)
		py := mercator.LatitudeToPixelY(coord.Lat)
		if px < left || px > right || py < top || py > bottom {
			continue
		}

		x := (px - left) / (right - left) * d.Width
		y := (py - top) / (bottom - top) * d.Height
		dc.DrawCircle(x, y, 2.5)
		dc.Fill()
	}

	img := canvas.NewImageFromImage(dc.Image())
	img.FillMode = canvas.ImageFillContain
	return img
}
