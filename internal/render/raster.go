package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gravitas-games/hexmark/pkg/hex"
)

// ErrInvalidRaster is returned for non-positive dimensions or scale.
var ErrInvalidRaster = errors.New("invalid raster")

type label struct {
	at   hex.Point
	text string
	c    color.Color
}

// Raster is a Canvas backed by an RGBA image. Polygons are drawn at scale
// times the output size and downsampled in Image; labels are drawn after
// downsampling so glyphs stay crisp.
type Raster struct {
	width, height int
	scale         int
	lineWidth     float64

	hi     *image.RGBA
	gc     *draw2dimg.GraphicContext
	labels []label
}

// NewRaster returns a width x height canvas filled with background.
func NewRaster(width, height, scale int, background color.Color, lineWidth float64) (*Raster, error) {
	if width < 1 || height < 1 || scale < 1 {
		return nil, fmt.Errorf("%w: %dx%d at scale %d", ErrInvalidRaster, width, height, scale)
	}
	if background == nil {
		background = color.White
	}
	hi := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.Draw(hi, hi.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(hi)
	gc.SetLineWidth(lineWidth * float64(scale))

	return &Raster{
		width:     width,
		height:    height,
		scale:     scale,
		lineWidth: lineWidth,
		hi:        hi,
		gc:        gc,
	}, nil
}

// Polygon fills and strokes the closed path through vertices. Nothing is
// stroked when the line width is zero.
func (r *Raster) Polygon(vertices []hex.Point, fill, outline color.Color) {
	if len(vertices) < 3 || (fill == nil && outline == nil) {
		return
	}
	s := float64(r.scale)
	r.gc.BeginPath()
	r.gc.MoveTo(vertices[0].X*s, vertices[0].Y*s)
	for _, v := range vertices[1:] {
		r.gc.LineTo(v.X*s, v.Y*s)
	}
	r.gc.Close()

	switch {
	case fill != nil && outline != nil && r.lineWidth > 0:
		r.gc.SetFillColor(fill)
		r.gc.SetStrokeColor(outline)
		r.gc.FillStroke()
	case fill != nil:
		r.gc.SetFillColor(fill)
		r.gc.Fill()
	case r.lineWidth > 0:
		r.gc.SetStrokeColor(outline)
		r.gc.Stroke()
	}
}

// Text queues text for drawing once the picture is downsampled.
func (r *Raster) Text(at hex.Point, text string, c color.Color) {
	if text == "" || c == nil {
		return
	}
	r.labels = append(r.labels, label{at: at, text: text, c: c})
}

// Image returns the finished picture at output size.
func (r *Raster) Image() image.Image {
	out := imaging.Resize(r.hi, r.width, r.height, imaging.Lanczos)

	face := basicfont.Face7x13
	m := face.Metrics()
	for _, l := range r.labels {
		d := font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(l.c),
			Face: face,
		}
		w := d.MeasureString(l.text)
		d.Dot = fixed.Point26_6{
			X: toFixed(l.at.X) - w/2,
			Y: toFixed(l.at.Y) + (m.Ascent-m.Descent)/2,
		}
		d.DrawString(l.text)
	}
	return out
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
