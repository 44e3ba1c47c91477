package hex

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the six unit steps on a flat-top grid.
type Direction uint8

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// Directions lists the six steps in canonical order, starting east and
// turning counter-clockwise. Neighbor and ring generation depend on it.
var Directions = [6]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}

var directionDeltas = [6]Axial{
	East:      {Q: +1, R: 0},
	NorthEast: {Q: +1, R: -1},
	NorthWest: {Q: 0, R: -1},
	West:      {Q: -1, R: 0},
	SouthWest: {Q: -1, R: +1},
	SouthEast: {Q: 0, R: +1},
}

var directionNames = [6]string{"east", "northeast", "northwest", "west", "southwest", "southeast"}

// NewDirection validates a raw (dq, dr) pair and returns the matching step.
func NewDirection(dq, dr int) (Direction, error) {
	var errs []error
	if !unitComponent(dq) {
		errs = append(errs, &InvalidDirectionComponentError{Component: "q", Value: dq})
	}
	if !unitComponent(dr) {
		errs = append(errs, &InvalidDirectionComponentError{Component: "r", Value: dr})
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	for _, d := range Directions {
		if directionDeltas[d].Q == dq && directionDeltas[d].R == dr {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: (%d,%d)", ErrNotAUnitOffset, dq, dr)
}

// ParseDirection looks a direction up by name, e.g. "east" or "north-east".
func ParseDirection(name string) (Direction, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for i, s := range directionNames {
		if s == n {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

func unitComponent(v int) bool { return v >= -1 && v <= 1 }

// Valid reports whether d is one of the six named steps.
func (d Direction) Valid() bool { return d <= SouthEast }

// Delta returns the axial step of d.
func (d Direction) Delta() (dq, dr int) {
	v := d.Vector()
	return v.Q, v.R
}

// Vector returns the step as an axial vector. An invalid d is the zero
// step, so Step and Scale leave positions unchanged for it.
func (d Direction) Vector() Axial {
	if !d.Valid() {
		return Axial{}
	}
	return directionDeltas[d]
}

// Scale returns the step multiplied by k.
func (d Direction) Scale(k int) Axial { return d.Vector().Mul(k) }

// Opposite returns the step pointing the other way. An invalid d is
// returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 3) % 6
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
