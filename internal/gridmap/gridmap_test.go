package gridmap

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gravitas-games/hexmark/pkg/finder"
	"github.com/gravitas-games/hexmark/pkg/hex"
)

type polygon struct {
	vertices      []hex.Point
	fill, outline color.Color
}

type text struct {
	at    hex.Point
	label string
	c     color.Color
}

// recorder is a render.Canvas that keeps every call.
type recorder struct {
	polygons []polygon
	texts    []text
}

func (r *recorder) Polygon(v []hex.Point, fill, outline color.Color) {
	r.polygons = append(r.polygons, polygon{append([]hex.Point(nil), v...), fill, outline})
}

func (r *recorder) Text(at hex.Point, label string, c color.Color) {
	r.texts = append(r.texts, text{at, label, c})
}

func mustLayout(t *testing.T, size float64, origin hex.Point) hex.Layout {
	t.Helper()
	l, err := hex.NewLayout(size, origin)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return l
}

func TestHexagonGridCellCount(t *testing.T) {
	l := mustLayout(t, 10, hex.Point{})
	for radius, want := range []int{1, 7, 19, 37} {
		g, err := NewHexagonGrid(l, radius)
		if err != nil {
			t.Fatalf("NewHexagonGrid: %v", err)
		}
		if g.Len() != want {
			t.Fatalf("radius %d: expected %d cells, got %d", radius, want, g.Len())
		}
		for _, c := range g.Cells() {
			if hex.Distance(hex.Axial{}, c) > radius {
				t.Fatalf("radius %d: cell %v outside grid", radius, c)
			}
		}
	}
	if _, err := NewHexagonGrid(l, -1); err == nil {
		t.Fatalf("expected error for negative radius")
	}
}

func TestParallelogramGrid(t *testing.T) {
	l := mustLayout(t, 10, hex.Point{})
	g, err := NewParallelogramGrid(l, -2, 1, 0, 2)
	if err != nil {
		t.Fatalf("NewParallelogramGrid: %v", err)
	}
	if g.Len() != 12 || g.Shape() != "parallelogram" {
		t.Fatalf("expected 12 parallelogram cells, got %d %s", g.Len(), g.Shape())
	}
	if !g.Contains(hex.Axial{Q: -2, R: 2}) || g.Contains(hex.Axial{Q: 2, R: 0}) {
		t.Fatalf("unexpected membership")
	}
	if _, ok := g.Hexagon(hex.Axial{Q: 5, R: 5}); ok {
		t.Fatalf("expected no hexagon outside grid")
	}
	if _, err := NewParallelogramGrid(l, 1, 0, 0, 0); err == nil {
		t.Fatalf("expected error for empty range")
	}
}

func TestVisibleUsesOneHexMargin(t *testing.T) {
	// Origin cell centred at (0,0): its centre is inside the widened image.
	l := mustLayout(t, 20, hex.Point{})
	g, err := NewParallelogramGrid(l, -3, 3, -3, 3)
	if err != nil {
		t.Fatalf("NewParallelogramGrid: %v", err)
	}
	vis := map[hex.Axial]bool{}
	for _, c := range g.Visible(100, 100) {
		vis[c] = true
		p := l.PixelCenter(c)
		if p.X <= -20 || p.X >= 120 || p.Y <= -20 || p.Y >= 120 {
			t.Fatalf("cell %v at %v should not be visible", c, p)
		}
	}
	if !vis[hex.Axial{}] {
		t.Fatalf("origin cell should be visible")
	}
	// (-1,0) sits at x=-30, beyond the margin.
	if vis[hex.Axial{Q: -1, R: 0}] {
		t.Fatalf("cell (-1,0) should be clipped")
	}
}

func TestFitLayoutCentresAndFits(t *testing.T) {
	cells := hex.Disk(hex.Axial{}, 10)
	l, err := FitLayout(cells, 600, 400, 10)
	if err != nil {
		t.Fatalf("FitLayout: %v", err)
	}
	lo, hi := l.Bounds(cells)
	if lo.X < 10-1e-9 || lo.Y < 10-1e-9 || hi.X > 590+1e-9 || hi.Y > 390+1e-9 {
		t.Fatalf("grid %v..%v does not fit with margin", lo, hi)
	}
	o := l.Origin()
	if math.Abs(o.X-300) > 1e-9 || math.Abs(o.Y-200) > 1e-9 {
		t.Fatalf("expected origin at image centre, got %v", o)
	}
	// The tighter axis should be filled exactly.
	if math.Abs(hi.Y-lo.Y-380) > 1e-9 {
		t.Fatalf("expected height 380, got %v", hi.Y-lo.Y)
	}
	if _, err := FitLayout(cells, 10, 10, 10); err == nil {
		t.Fatalf("expected error when margin leaves no room")
	}
	if _, err := FitLayout(nil, 10, 10, 0); err == nil {
		t.Fatalf("expected error for no cells")
	}
}

func newScene(t *testing.T, labels bool) *Scene {
	t.Helper()
	cells := hex.Disk(hex.Axial{}, finder.ReferenceRadius)
	l, err := FitLayout(cells, 600, 600, 10)
	if err != nil {
		t.Fatalf("FitLayout: %v", err)
	}
	g, err := NewHexagonGrid(l, finder.ReferenceRadius)
	if err != nil {
		t.Fatalf("NewHexagonGrid: %v", err)
	}
	plans, err := finder.Plans(finder.ReferenceRadius)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	s, err := NewScene(g, plans, 600, 600, Style{Outline: color.Black, Background: color.White, Labels: labels})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestSceneDrawOrder(t *testing.T) {
	s := newScene(t, true)
	var rec recorder
	if err := s.Draw(context.Background(), &rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	cells := s.Grid().Len()
	if len(rec.polygons) != cells+21 {
		t.Fatalf("expected %d polygons, got %d", cells+21, len(rec.polygons))
	}
	for i, p := range rec.polygons[:cells] {
		if p.fill != nil || p.outline != color.Black {
			t.Fatalf("default polygon %d: expected outline only, got %v/%v", i, p.fill, p.outline)
		}
	}
	// The last 7 polygons are the y-axis pattern: white centre, blue ring.
	last := rec.polygons[cells+14:]
	if last[0].fill != finder.White.RGBA() {
		t.Fatalf("expected white centre, got %v", last[0].fill)
	}
	for _, p := range last[1:] {
		if p.fill != finder.Blue.RGBA() || p.outline != finder.Black.RGBA() {
			t.Fatalf("expected blue ring with black outline, got %v/%v", p.fill, p.outline)
		}
	}
	if len(rec.texts) != cells {
		t.Fatalf("expected one label per cell, got %d", len(rec.texts))
	}
	for _, tx := range rec.texts {
		if tx.label == "-8,8" {
			return
		}
	}
	t.Fatalf("missing label for y-axis centre")
}

func TestSceneLabelContrast(t *testing.T) {
	s := newScene(t, true)
	var rec recorder
	if err := s.Draw(context.Background(), &rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for _, tx := range rec.texts {
		switch tx.label {
		case "0,0":
			if tx.c != DefaultLabelColor {
				t.Fatalf("expected default label colour, got %v", tx.c)
			}
		case "-7,7": // y-axis ring, blue
			if tx.c != color.White {
				t.Fatalf("expected white text on blue, got %v", tx.c)
			}
		}
	}
}

func TestSceneDrawWithoutLabels(t *testing.T) {
	s := newScene(t, false)
	var rec recorder
	if err := s.Draw(context.Background(), &rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rec.texts) != 0 {
		t.Fatalf("expected no labels, got %d", len(rec.texts))
	}
}

func TestSceneDrawCancelled(t *testing.T) {
	s := newScene(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var rec recorder
	if err := s.Draw(ctx, &rec); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(rec.polygons) != 0 {
		t.Fatalf("expected nothing drawn, got %d polygons", len(rec.polygons))
	}
}

func TestSceneCells(t *testing.T) {
	s := newScene(t, false)
	cells := s.Cells()
	if len(cells) != s.Grid().Len() {
		t.Fatalf("expected %d records, got %d", s.Grid().Len(), len(cells))
	}
	finders := 0
	for _, c := range cells {
		if c.Finder == nil {
			if c.Fill != nil {
				t.Fatalf("default cell %v should have no fill", c.Pos)
			}
			continue
		}
		finders++
		want, _ := c.Finder.FillFor(c.Pos)
		if c.Fill != want.RGBA() {
			t.Fatalf("cell %v: expected fill %v, got %v", c.Pos, want, c.Fill)
		}
	}
	if finders != 21 {
		t.Fatalf("expected 21 finder cells, got %d", finders)
	}
}

func TestSceneCellsDoNotShareAPlan(t *testing.T) {
	s := newScene(t, false)
	want := s.Plans()
	for _, c := range s.Cells() {
		if c.Finder != nil {
			c.Finder.RingColor = finder.Black
			c.Finder.CenterColor = finder.Black
		}
	}
	got := s.Plans()
	for i := range want {
		if got[i].RingColor != want[i].RingColor || got[i].CenterColor != want[i].CenterColor {
			t.Fatalf("plan %v changed through a cell record: %v/%v", got[i].Role, got[i].CenterColor, got[i].RingColor)
		}
	}
	for _, c := range s.Cells() {
		if c.Fill == finder.Black.RGBA() {
			t.Fatalf("cell %v picked up a fill changed through another record", c.Pos)
		}
	}
}

func TestNewSceneRejectsPlanOutsideGrid(t *testing.T) {
	l := mustLayout(t, 10, hex.Point{})
	g, err := NewHexagonGrid(l, 3)
	if err != nil {
		t.Fatalf("NewHexagonGrid: %v", err)
	}
	p, err := finder.NewPlan(hex.Axial{Q: 3, R: 0}, finder.Origin)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if _, err := NewScene(g, []finder.Plan{p}, 100, 100, Style{}); !errors.Is(err, ErrPlanOutsideGrid) {
		t.Fatalf("expected ErrPlanOutsideGrid, got %v", err)
	}
}
