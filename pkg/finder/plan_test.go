package finder

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gravitas-games/hexmark/pkg/hex"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"origin", Origin},
		{"x-axis", XAxis},
		{"xaxis", XAxis},
		{"Y-Axis", YAxis},
		{" yaxis ", YAxis},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRole(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	for _, bad := range []string{"", "z-axis", "center"} {
		if _, err := ParseRole(bad); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", bad, err)
		}
	}
}

func TestColorScheme(t *testing.T) {
	tests := []struct {
		role         Role
		center, ring Color
	}{
		{Origin, White, Red},
		{XAxis, White, Red},
		{YAxis, White, Blue},
	}
	for _, tt := range tests {
		c, r, err := Colors(tt.role)
		if err != nil {
			t.Fatalf("Colors(%v): %v", tt.role, err)
		}
		if c != tt.center || r != tt.ring {
			t.Fatalf("Colors(%v): expected %v/%v, got %v/%v", tt.role, tt.center, tt.ring, c, r)
		}
	}
	if _, _, err := Colors(Role(9)); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestColorValues(t *testing.T) {
	if Red.RGBA() != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("unexpected red %v", Red.RGBA())
	}
	if Blue.Hex() != "#0000FF" || White.Hex() != "#FFFFFF" || Black.Hex() != "#000000" {
		t.Fatalf("unexpected hex values %s %s %s", Blue.Hex(), White.Hex(), Black.Hex())
	}
}

func TestYAxisPlan(t *testing.T) {
	center := hex.Axial{Q: -8, R: 8}
	p, err := PlanFor(center, "y-axis")
	if err != nil {
		t.Fatalf("PlanFor: %v", err)
	}
	if p.RingColor != Blue || p.CenterColor != White {
		t.Fatalf("expected white/blue, got %v/%v", p.CenterColor, p.RingColor)
	}
	cells := p.Cells()
	want := map[hex.Axial]bool{center: true}
	for _, d := range hex.Directions {
		want[center.Step(d)] = true
	}
	got := map[hex.Axial]bool{}
	for _, c := range cells {
		got[c] = true
	}
	if len(got) != 7 || len(want) != 7 {
		t.Fatalf("expected 7 distinct cells, got %d", len(got))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("plan is missing %v", c)
		}
	}
	if cells[0] != center {
		t.Fatalf("first cell should be the centre, got %v", cells[0])
	}
	for i, r := range p.Ring() {
		if r != center.Step(hex.Directions[i]) {
			t.Fatalf("ring[%d]: expected %v, got %v", i, center.Step(hex.Directions[i]), r)
		}
	}
}

func TestPlanForInvalidRole(t *testing.T) {
	if _, err := PlanFor(hex.Axial{}, "diagonal"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := NewPlan(hex.Axial{}, Role(3)); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestFillFor(t *testing.T) {
	p, err := NewPlan(hex.Axial{Q: 2, R: 2}, Origin)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if c, ok := p.FillFor(hex.Axial{Q: 2, R: 2}); !ok || c != White {
		t.Fatalf("centre fill: got %v %v", c, ok)
	}
	if c, ok := p.FillFor(hex.Axial{Q: 3, R: 2}); !ok || c != Red {
		t.Fatalf("ring fill: got %v %v", c, ok)
	}
	if p.Contains(hex.Axial{Q: 4, R: 2}) {
		t.Fatalf("cell at distance 2 should not belong to the pattern")
	}
}

func TestReferenceCenters(t *testing.T) {
	centers, err := Centers(ReferenceRadius)
	if err != nil {
		t.Fatalf("Centers: %v", err)
	}
	if centers[Origin] != ReferenceTopLeft || centers[XAxis] != ReferenceTopRight || centers[YAxis] != ReferenceBottomLeft {
		t.Fatalf("unexpected reference centres %v", centers)
	}
}

func TestPlansFitAndDoNotOverlap(t *testing.T) {
	for radius := MinRadius; radius <= 12; radius++ {
		plans, err := Plans(radius)
		if err != nil {
			t.Fatalf("Plans(%d): %v", radius, err)
		}
		if len(plans) != 3 {
			t.Fatalf("Plans(%d): expected 3 plans, got %d", radius, len(plans))
		}
		owner := map[hex.Axial]Role{}
		for _, p := range plans {
			for _, c := range p.Cells() {
				if hex.Distance(hex.Axial{}, c) > radius {
					t.Fatalf("radius %d: %v cell %v outside grid", radius, p.Role, c)
				}
				if prev, ok := owner[c]; ok {
					t.Fatalf("radius %d: %v overlaps %v at %v", radius, p.Role, prev, c)
				}
				owner[c] = p.Role
			}
		}
	}
	if _, err := Plans(MinRadius - 1); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
}

func TestMustLayoutPanicsOnBadSize(t *testing.T) {
	if topology.Size() != 1 {
		t.Fatalf("expected unit topology, got size %v", topology.Size())
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for size 0")
		}
	}()
	mustLayout(0, hex.Point{})
}

func TestRoleText(t *testing.T) {
	b, err := XAxis.MarshalText()
	if err != nil || string(b) != "x-axis" {
		t.Fatalf("MarshalText: got %q %v", b, err)
	}
	var r Role
	if err := r.UnmarshalText([]byte("yaxis")); err != nil || r != YAxis {
		t.Fatalf("UnmarshalText: got %v %v", r, err)
	}
	if err := r.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
