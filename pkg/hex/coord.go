package hex

import (
	"fmt"
	"math"
)

// Axial represents axial coordinates (q, r) of a cell on a flat-top grid.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Step returns the cell one step from a in direction d.
func (a Axial) Step(d Direction) Axial { return a.Add(d.Vector()) }

// Sub returns the direction leading from b to a. It only succeeds for
// adjacent cells; use Displacement or Distance for anything else.
func (a Axial) Sub(b Axial) (Direction, error) {
	dq, dr := a.Q-b.Q, a.R-b.R
	d, err := NewDirection(dq, dr)
	if err != nil {
		return 0, fmt.Errorf("%w: (%d,%d) - (%d,%d) = (%d,%d)", ErrNotAUnitOffset, a.Q, a.R, b.Q, b.R, dq, dr)
	}
	return d, nil
}

// Displacement returns the raw vector a-b.
func (a Axial) Displacement(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

func (a Axial) String() string { return fmt.Sprintf("(%d,%d)", a.Q, a.R) }

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Valid reports whether the cube coordinates sum to zero.
func (c Cube) Valid() bool { return c.X+c.Y+c.Z == 0 }

// Distance returns the hex distance between two axial coords.
func Distance(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns the hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)) / 2
}

// Round snaps fractional axial coordinates to the nearest cell.
func Round(q, r float64) Axial {
	x, z := q, r
	y := -x - z
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}.ToAxial()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
