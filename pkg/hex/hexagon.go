package hex

import "fmt"

// Hexagon binds a cell position to the layout it is drawn with. It is a
// comparable value: hexagons with equal positions and equal layouts are ==
// and hash identically as map keys.
type Hexagon struct {
	pos    Axial
	layout Layout
}

// NewHexagon returns the hexagon at pos drawn with layout.
func NewHexagon(pos Axial, layout Layout) Hexagon {
	return Hexagon{pos: pos, layout: layout}
}

// Pos returns the cell position.
func (h Hexagon) Pos() Axial { return h.pos }

// Layout returns the layout the hexagon is projected with.
func (h Hexagon) Layout() Layout { return h.layout }

// PixelCenter returns the pixel centre of the hexagon.
func (h Hexagon) PixelCenter() Point { return h.layout.PixelCenter(h.pos) }

// Vertices returns the six pixel corners, see Layout.Vertices.
func (h Hexagon) Vertices() [6]Point { return h.layout.Vertices(h.pos) }

// Neighbors returns the six adjacent hexagons in Directions order,
// sharing h's layout.
func (h Hexagon) Neighbors() [6]Hexagon {
	var out [6]Hexagon
	for i, d := range Directions {
		out[i] = Hexagon{pos: h.pos.Step(d), layout: h.layout}
	}
	return out
}

// DistanceTo returns the number of steps between the two cells. Layouts
// are ignored.
func (h Hexagon) DistanceTo(other Hexagon) int { return Distance(h.pos, other.pos) }

func (h Hexagon) String() string { return fmt.Sprintf("Hexagon%s", h.pos) }
