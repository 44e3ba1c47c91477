// Package render rasterises hex geometry into images.
package render

import (
	"image/color"

	"github.com/gravitas-games/hexmark/pkg/hex"
)

// Canvas is the drawing surface the grid is painted on. Coordinates are in
// output pixels.
type Canvas interface {
	// Polygon draws a closed polygon. A nil fill draws the outline only and
	// a nil outline fills without stroking.
	Polygon(vertices []hex.Point, fill, outline color.Color)
	// Text draws label centred on at.
	Text(at hex.Point, label string, c color.Color)
}
