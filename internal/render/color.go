package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a #RRGGBB (or #RGB) string. "none" and the empty string
// yield nil, meaning no paint.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// LabelColor picks black or white text, whichever reads better on bg.
// A nil or transparent bg is treated as white.
func LabelColor(bg color.Color) color.Color {
	if bg == nil {
		return color.Black
	}
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return color.Black
	}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return color.Black
	}
	return color.White
}
