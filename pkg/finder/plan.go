// Package finder places the three seven-cell finder patterns that mark
// the origin and axes of a rendered grid.
package finder

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexmark/pkg/hex"
)

// Outline is the outline colour every finder cell is drawn with.
const Outline = Black

// ReferenceRadius is the grid radius the fixed marker positions below are laid out for.
const ReferenceRadius = 10

var (
	ReferenceTopLeft    = hex.Axial{Q: -8, R: 0}
	ReferenceTopRight   = hex.Axial{Q: 0, R: -8}
	ReferenceBottomLeft = hex.Axial{Q: -8, R: 8}
)

// MinRadius is the smallest grid radius on which the three patterns fit
// without touching each other.
const MinRadius = 5

// inset is how far each centre sits inside the grid edge.
const inset = 2

// ErrGridTooSmall is returned by Centers and Plans for radius < MinRadius.
var ErrGridTooSmall = errors.New("grid too small for finder patterns")

// topology is only used to walk neighbors; pixel geometry is irrelevant.
var topology = mustLayout(1, hex.Point{})

func mustLayout(size float64, origin hex.Point) hex.Layout {
	l, err := hex.NewLayout(size, origin)
	if err != nil {
		panic(err)
	}
	return l
}

// Plan is the set of cells and fills of one finder pattern.
type Plan struct {
	Role        Role
	Center      hex.Axial
	CenterColor Color
	RingColor   Color
	ring        [6]hex.Axial
}

// NewPlan computes the pattern centred on center for role.
func NewPlan(center hex.Axial, role Role) (Plan, error) {
	cc, rc, err := Colors(role)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Role: role, Center: center, CenterColor: cc, RingColor: rc}
	for i, n := range hex.NewHexagon(center, topology).Neighbors() {
		p.ring[i] = n.Pos()
	}
	return p, nil
}

// PlanFor is NewPlan with the role given by name.
func PlanFor(center hex.Axial, roleName string) (Plan, error) {
	role, err := ParseRole(roleName)
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(center, role)
}

// Ring returns the six ring cells in hex.Directions order.
func (p Plan) Ring() [6]hex.Axial { return p.ring }

// Cells returns the centre followed by the ring.
func (p Plan) Cells() [7]hex.Axial {
	var out [7]hex.Axial
	out[0] = p.Center
	copy(out[1:], p.ring[:])
	return out
}

// Contains reports whether a is one of the seven cells.
func (p Plan) Contains(a hex.Axial) bool {
	_, ok := p.FillFor(a)
	return ok
}

// FillFor returns the fill colour for a when a belongs to the pattern.
func (p Plan) FillFor(a hex.Axial) (Color, bool) {
	if a == p.Center {
		return p.CenterColor, true
	}
	for _, r := range p.ring {
		if r == a {
			return p.RingColor, true
		}
	}
	return 0, false
}

// Centers returns the pattern centre for every role on a grid of the
// given radius. Radius ReferenceRadius yields the reference positions.
func Centers(radius int) (map[Role]hex.Axial, error) {
	if radius < MinRadius {
		return nil, fmt.Errorf("%w: radius %d < %d", ErrGridTooSmall, radius, MinRadius)
	}
	d := radius - inset
	return map[Role]hex.Axial{
		Origin: {Q: -d, R: 0},
		XAxis:  {Q: 0, R: -d},
		YAxis:  {Q: -d, R: d},
	}, nil
}

// Plans returns the three patterns for a grid of the given radius, in
// Roles order.
func Plans(radius int) ([]Plan, error) {
	centers, err := Centers(radius)
	if err != nil {
		return nil, err
	}
	out := make([]Plan, 0, len(Roles))
	for _, role := range Roles {
		p, err := NewPlan(centers[role], role)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
