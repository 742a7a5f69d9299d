package sim

import "image/color"

// Surface is the drawing target the simulation renders onto.
// Coordinates are in surface pixels with the origin at the top left.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Discard is a Surface that draws nothing. Headless runs use it.
var Discard Surface = discard{}

type discard struct{}

func (discard) FillRect(x, y, w, h float64, c color.Color)  {}
func (discard) FillCircle(cx, cy, r float64, c color.Color) {}
