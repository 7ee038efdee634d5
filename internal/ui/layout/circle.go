package layout

import (
	"image"
	"math"
)

const (
	// MinRingRadius is the smallest ring radius in rows, used when the area
	// is too small to fit the cells.
	MinRingRadius = 4.0

	// RingAspect caps the horizontal radius as a multiple of the vertical
	// one so wide terminals still get a ring rather than a flat band.
	RingAspect = 4.0

	ringPadding = 1.0
)

// Circle returns n top-left positions for cellW x cellH boxes spaced evenly
// around a ring centred in a width x height area. The first position is at
// twelve o'clock and the rest follow clockwise.
//
// Terminal cells are taller than they are wide, so each axis gets its own
// radius: the vertical one fills the height, the horizontal one fills the
// width up to RingAspect times the vertical one. Positions never go negative.
func Circle(width, height, n, cellW, cellH int) []image.Point {
	if n <= 0 {
		return nil
	}
	cx := float64(width) / 2
	cy := float64(height) / 2

	ry := math.Max((float64(height-cellH)-2*ringPadding)/2, MinRingRadius)
	rx := math.Min((float64(width-cellW)-2*ringPadding)/2, RingAspect*ry)
	rx = math.Max(rx, 2*MinRingRadius)

	step := 2 * math.Pi / float64(n)
	points := make([]image.Point, n)
	for i := range points {
		angle := float64(i)*step - math.Pi/2
		x := cx + rx*math.Cos(angle) - float64(cellW)/2
		y := cy + ry*math.Sin(angle) - float64(cellH)/2
		points[i] = image.Pt(max(0, int(math.Round(x))), max(0, int(math.Round(y))))
	}
	return points
}
