package hex

import (
	"fmt"
	"math"
)

const sqrt3 = 1.7320508075688772935274463415059

// Point is a pixel coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Layout holds the projection parameters of one rendering pass for a
// flat-top grid. size is the distance from a cell centre to any of its
// corners; origin is the pixel centre of cell (0,0).
//
// Layout is an immutable value: two layouts with the same size and origin
// compare equal and can be used interchangeably, including as map keys.
type Layout struct {
	size   float64
	origin Point
}

// NewLayout validates size and origin and returns a layout.
func NewLayout(size float64, origin Point) (Layout, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return Layout{}, fmt.Errorf("%w: %v", ErrInvalidLayoutSize, size)
	}
	if !finite(origin.X) || !finite(origin.Y) {
		return Layout{}, fmt.Errorf("%w: (%v,%v)", ErrInvalidLayoutOrigin, origin.X, origin.Y)
	}
	return Layout{size: size, origin: origin}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Size returns the centre-to-corner distance in pixels.
func (l Layout) Size() float64 { return l.size }

// Origin returns the pixel centre of cell (0,0).
func (l Layout) Origin() Point { return l.origin }

// PixelCenter converts axial to the pixel centre of the cell.
func (l Layout) PixelCenter(a Axial) Point {
	// flat-top: x = size*3/2*q; y = size*(sqrt(3)/2*q + sqrt(3)*r)
	x := l.size * (1.5 * float64(a.Q))
	y := l.size * (sqrt3/2*float64(a.Q) + sqrt3*float64(a.R))
	return Point{X: l.origin.X + x, Y: l.origin.Y + y}
}

// Vertices returns the six corners of the cell, starting at 0° and
// increasing in 60° steps. Rasterisers walk the edges in this order.
func (l Layout) Vertices(a Axial) [6]Point {
	c := l.PixelCenter(a)
	var out [6]Point
	for i := range out {
		angle := math.Pi / 3 * float64(i)
		out[i] = Point{
			X: c.X + l.size*math.Cos(angle),
			Y: c.Y + l.size*math.Sin(angle),
		}
	}
	return out
}

// PixelToAxial returns the cell containing pixel p.
func (l Layout) PixelToAxial(p Point) Axial {
	x := (p.X - l.origin.X) / l.size
	y := (p.Y - l.origin.Y) / l.size
	q := 2.0 / 3 * x
	r := -1.0/3*x + sqrt3/3*y
	return Round(q, r)
}

// Bounds returns the pixel bounding box covering every vertex of cells.
// An empty slice yields the origin for both corners.
func (l Layout) Bounds(cells []Axial) (lo, hi Point) {
	if len(cells) == 0 {
		return l.origin, l.origin
	}
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, a := range cells {
		for _, v := range l.Vertices(a) {
			lo.X = math.Min(lo.X, v.X)
			lo.Y = math.Min(lo.Y, v.Y)
			hi.X = math.Max(hi.X, v.X)
			hi.Y = math.Max(hi.Y, v.Y)
		}
	}
	return lo, hi
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout(size=%g, origin=(%g,%g))", l.size, l.origin.X, l.origin.Y)
}
