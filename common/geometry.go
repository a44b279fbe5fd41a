package common

import (
	"fyne.io/fyne/v2"
)

// Dimension is a viewport size in on-screen pixels.
type Dimension struct {
	Width  float64
	Height float64
}

func DimensionFromSize(s fyne.Size) Dimension {
	return Dimension{
		Width:  float64(s.Width),
		Height: float64(s.Height),
	}
}

func (d Dimension) Size() fyne.Size {
	return fyne.NewSize(float32(d.Width), float32(d.Height))
}
