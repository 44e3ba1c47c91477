package finder

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidRole marks a finder role name that is not recognised.
var ErrInvalidRole = errors.New("invalid finder role")

// Role identifies which corner marker a finder pattern is.
type Role uint8

const (
	Origin Role = iota // top-left
	XAxis              // top-right
	YAxis              // bottom-left
)

// Roles lists every role in drawing order.
var Roles = [3]Role{Origin, XAxis, YAxis}

var roleNames = [3]string{"origin", "x-axis", "y-axis"}

// ParseRole accepts "origin", "x-axis" or "y-axis"; the hyphen is optional.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "origin":
		return Origin, nil
	case "x-axis", "xaxis":
		return XAxis, nil
	case "y-axis", "yaxis":
		return YAxis, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, name)
}

// Valid reports whether r is one of the three roles.
func (r Role) Valid() bool { return r <= YAxis }

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, uint8(r))
	}
	return []byte(roleNames[r]), nil
}

// UnmarshalText decodes a role name through ParseRole.
func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Color is the small palette the finder protocol is drawn with.
type Color uint8

const (
	Black Color = iota
	Red
	Blue
	White
)

var colorValues = [4]color.RGBA{
	Black: {0, 0, 0, 255},
	Red:   {255, 0, 0, 255},
	Blue:  {0, 0, 255, 255},
	White: {255, 255, 255, 255},
}

var colorNames = [4]string{"black", "red", "blue", "white"}

// RGBA returns the opaque RGB value of c.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(colorValues) {
		return color.RGBA{}
	}
	return colorValues[c]
}

// Hex returns c as "#RRGGBB".
func (c Color) Hex() string {
	v := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// MarshalText encodes the colour by name.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

type scheme struct {
	center Color
	ring   Color
}

// schemes maps each role to its (centre, ring) fill.
var schemes = [3]scheme{
	Origin: {center: White, ring: Red},
	XAxis:  {center: White, ring: Red},
	YAxis:  {center: White, ring: Blue},
}

// Colors returns the centre and ring fill for role.
func Colors(role Role) (center, ring Color, err error) {
	if !role.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidRole, uint8(role))
	}
	s := schemes[role]
	return s.center, s.ring, nil
}
