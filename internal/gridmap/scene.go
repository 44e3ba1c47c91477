package gridmap

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/gravitas-games/hexmark/internal/logging"
	"github.com/gravitas-games/hexmark/internal/render"
	"github.com/gravitas-games/hexmark/pkg/finder"
	"github.com/gravitas-games/hexmark/pkg/hex"
)

// ErrPlanOutsideGrid is returned when a finder pattern needs a cell the
// grid does not have.
var ErrPlanOutsideGrid = errors.New("finder pattern outside grid")

// DefaultLabelColor is the coordinate text colour on unfilled cells.
var DefaultLabelColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}

// Style controls how default cells are painted.
type Style struct {
	Outline    color.Color // nil disables outlines
	Background color.Color // used to pick label contrast
	LabelColor color.Color // nil picks by contrast with the cell fill
	Labels     bool
}

// Cell is the render record of one grid cell.
type Cell struct {
	Pos      hex.Axial
	Center   hex.Point
	Vertices [6]hex.Point
	Fill     color.Color // nil for default cells
	Outline  color.Color
	Finder   *finder.Plan // copy of the owning pattern, nil for default cells
}

// Scene is a grid with its finder patterns, sized for one image.
type Scene struct {
	grid          *Grid
	plans         []finder.Plan
	owner         map[hex.Axial]int
	width, height int
	style         Style
	log           zerolog.Logger
}

// NewScene combines grid and plans. Every plan cell must be a grid cell.
func NewScene(grid *Grid, plans []finder.Plan, width, height int, style Style) (*Scene, error) {
	s := &Scene{
		grid:   grid,
		plans:  append([]finder.Plan(nil), plans...),
		owner:  make(map[hex.Axial]int, 7*len(plans)),
		width:  width,
		height: height,
		style:  style,
		log:    logging.For("gridmap"),
	}
	for i, p := range s.plans {
		for _, c := range p.Cells() {
			if !grid.Contains(c) {
				return nil, fmt.Errorf("%w: %v cell %v", ErrPlanOutsideGrid, p.Role, c)
			}
			s.owner[c] = i
		}
	}
	return s, nil
}

// Grid returns the underlying grid.
func (s *Scene) Grid() *Grid { return s.grid }

// Plans returns the finder patterns in the order they were given.
func (s *Scene) Plans() []finder.Plan { return append([]finder.Plan(nil), s.plans...) }

// Size returns the image size the scene was built for.
func (s *Scene) Size() (width, height int) { return s.width, s.height }

// Cells returns a render record for every grid cell in grid order.
func (s *Scene) Cells() []Cell {
	out := make([]Cell, 0, s.grid.Len())
	for _, a := range s.grid.cells {
		out = append(out, s.cell(a))
	}
	return out
}

func (s *Scene) cell(a hex.Axial) Cell {
	h := hex.NewHexagon(a, s.grid.layout)
	c := Cell{
		Pos:      a,
		Center:   h.PixelCenter(),
		Vertices: h.Vertices(),
		Outline:  s.style.Outline,
	}
	if i, ok := s.owner[a]; ok {
		p := s.plans[i]
		fill, _ := p.FillFor(a)
		c.Fill = fill.RGBA()
		c.Outline = finder.Outline.RGBA()
		c.Finder = &p
	}
	return c
}

// Draw paints the visible cells onto canvas: outlines and labels first,
// then the finder cells on top. It stops early when ctx is done.
func (s *Scene) Draw(ctx context.Context, canvas render.Canvas) error {
	visible := s.grid.Visible(s.width, s.height)

	for _, a := range visible {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := s.cell(a)
		canvas.Polygon(c.Vertices[:], nil, s.style.Outline)
		if s.style.Labels && c.Finder == nil {
			canvas.Text(c.Center, label(a), s.labelColor(nil))
		}
	}

	finders := 0
	for _, p := range s.plans {
		for _, a := range p.Cells() {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := s.cell(a)
			canvas.Polygon(c.Vertices[:], c.Fill, c.Outline)
			if s.style.Labels {
				canvas.Text(c.Center, label(a), s.labelColor(c.Fill))
			}
			finders++
		}
	}

	s.log.Debug().
		Int("visible", len(visible)).
		Int("finder_cells", finders).
		Msg("scene drawn")
	return nil
}

func (s *Scene) labelColor(fill color.Color) color.Color {
	if s.style.LabelColor != nil {
		return s.style.LabelColor
	}
	if fill == nil {
		if s.style.Background != nil && render.LabelColor(s.style.Background) == color.White {
			return color.White
		}
		return DefaultLabelColor
	}
	return render.LabelColor(fill)
}

func label(a hex.Axial) string { return fmt.Sprintf("%d,%d", a.Q, a.R) }
