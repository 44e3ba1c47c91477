// Package gridmap holds the set of cells a picture is made of and paints
// them, finder patterns included, onto a render.Canvas.
package gridmap

import (
	"fmt"

	"github.com/gravitas-games/hexmark/internal/logging"
	"github.com/gravitas-games/hexmark/pkg/hex"
)

// Grid is an ordered set of cells projected through one layout.
type Grid struct {
	layout hex.Layout
	shape  string
	cells  []hex.Axial
	index  map[hex.Axial]int
}

// NewHexagonGrid creates the hexagon-shaped grid of all cells within radius
// of the origin cell.
func NewHexagonGrid(layout hex.Layout, radius int) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("grid radius %d must not be negative", radius)
	}
	g := newGrid(layout, "hexagon", hex.Disk(hex.Axial{}, radius))
	log := logging.For("gridmap")
	log.Debug().Int("radius", radius).Int("cells", g.Len()).Msg("generated hexagon grid")
	return g, nil
}

// NewParallelogramGrid creates the grid of every cell with q in
// [qMin, qMax] and r in [rMin, rMax].
func NewParallelogramGrid(layout hex.Layout, qMin, qMax, rMin, rMax int) (*Grid, error) {
	if qMax < qMin || rMax < rMin {
		return nil, fmt.Errorf("grid range q[%d,%d] r[%d,%d] is empty", qMin, qMax, rMin, rMax)
	}
	g := newGrid(layout, "parallelogram", hex.Parallelogram(qMin, qMax, rMin, rMax))
	log := logging.For("gridmap")
	log.Debug().Int("cells", g.Len()).Msg("generated parallelogram grid")
	return g, nil
}

func newGrid(layout hex.Layout, shape string, cells []hex.Axial) *Grid {
	g := &Grid{
		layout: layout,
		shape:  shape,
		cells:  cells,
		index:  make(map[hex.Axial]int, len(cells)),
	}
	for i, c := range cells {
		g.index[c] = i
	}
	return g
}

// Layout returns the projection shared by every cell.
func (g *Grid) Layout() hex.Layout { return g.layout }

// Shape returns "hexagon" or "parallelogram".
func (g *Grid) Shape() string { return g.shape }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns a copy of the cells in generation order.
func (g *Grid) Cells() []hex.Axial {
	out := make([]hex.Axial, len(g.cells))
	copy(out, g.cells)
	return out
}

// Contains reports whether a is part of the grid.
func (g *Grid) Contains(a hex.Axial) bool {
	_, ok := g.index[a]
	return ok
}

// Hexagon returns the cell at a bound to the grid layout.
func (g *Grid) Hexagon(a hex.Axial) (hex.Hexagon, bool) {
	if !g.Contains(a) {
		return hex.Hexagon{}, false
	}
	return hex.NewHexagon(a, g.layout), true
}

// Visible returns the cells whose centre falls inside a width x height
// image widened by one hex size on every side.
func (g *Grid) Visible(width, height int) []hex.Axial {
	s := g.layout.Size()
	w, h := float64(width), float64(height)
	out := make([]hex.Axial, 0, len(g.cells))
	for _, c := range g.cells {
		p := g.layout.PixelCenter(c)
		if p.X > -s && p.X < w+s && p.Y > -s && p.Y < h+s {
			out = append(out, c)
		}
	}
	return out
}

// FitLayout returns the largest layout that draws cells inside a
// width x height image with margin pixels to spare, centred on the image.
func FitLayout(cells []hex.Axial, width, height int, margin float64) (hex.Layout, error) {
	if len(cells) == 0 {
		return hex.Layout{}, fmt.Errorf("no cells to fit")
	}
	unit, err := hex.NewLayout(1, hex.Point{})
	if err != nil {
		return hex.Layout{}, err
	}
	lo, hi := unit.Bounds(cells)
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	size := min(availW/(hi.X-lo.X), availH/(hi.Y-lo.Y))

	origin := hex.Point{
		X: float64(width)/2 - size*(lo.X+hi.X)/2,
		Y: float64(height)/2 - size*(lo.Y+hi.Y)/2,
	}
	layout, err := hex.NewLayout(size, origin)
	if err != nil {
		return hex.Layout{}, fmt.Errorf("cannot fit %d cells into %dx%d with margin %g: %w",
			len(cells), width, height, margin, err)
	}
	return layout, nil
}

// CenteredLayout places the origin cell at the middle of the image.
func CenteredLayout(size float64, width, height int) (hex.Layout, error) {
	return hex.NewLayout(size, hex.Point{X: float64(width) / 2, Y: float64(height) / 2})
}
