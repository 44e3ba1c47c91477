// Package export dumps the geometry of a scene as JSON.
package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gravitas-games/hexmark/internal/gridmap"
	"github.com/gravitas-games/hexmark/pkg/hex"
)

// Document is the top-level JSON object.
type Document struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Shape   string    `json:"shape"`
	HexSize float64   `json:"hex_size"`
	Origin  Point     `json:"origin"`
	Finders []Finder  `json:"finders"`
	Cells   []CellDoc `json:"cells"`
}

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Coord is an axial cell position.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Finder describes one finder pattern.
type Finder struct {
	Role        string  `json:"role"`
	Center      Coord   `json:"center"`
	Ring        []Coord `json:"ring"`
	CenterColor string  `json:"center_color"`
	RingColor   string  `json:"ring_color"`
}

// CellDoc describes one rendered cell.
type CellDoc struct {
	Pos      Coord   `json:"pos"`
	Center   Point   `json:"center"`
	Vertices []Point `json:"vertices"`
	Fill     string  `json:"fill,omitempty"`
	Outline  string  `json:"outline,omitempty"`
	Finder   string  `json:"finder,omitempty"`
}

// Build converts scene into its JSON document.
func Build(scene *gridmap.Scene) Document {
	layout := scene.Grid().Layout()
	w, h := scene.Size()
	doc := Document{
		Width:   w,
		Height:  h,
		Shape:   scene.Grid().Shape(),
		HexSize: layout.Size(),
		Origin:  point(layout.Origin()),
	}

	for _, p := range scene.Plans() {
		f := Finder{
			Role:        p.Role.String(),
			Center:      coord(p.Center),
			CenterColor: p.CenterColor.Hex(),
			RingColor:   p.RingColor.Hex(),
		}
		for _, r := range p.Ring() {
			f.Ring = append(f.Ring, coord(r))
		}
		doc.Finders = append(doc.Finders, f)
	}

	for _, c := range scene.Cells() {
		cd := CellDoc{
			Pos:     coord(c.Pos),
			Center:  point(c.Center),
			Fill:    hexColor(c.Fill),
			Outline: hexColor(c.Outline),
		}
		for _, v := range c.Vertices {
			cd.Vertices = append(cd.Vertices, point(v))
		}
		if c.Finder != nil {
			cd.Finder = c.Finder.Role.String()
		}
		doc.Cells = append(doc.Cells, cd)
	}
	return doc
}

// Write encodes scene as indented JSON to w.
func Write(w io.Writer, scene *gridmap.Scene) error {
	data, err := sonic.ConfigStd.MarshalIndent(Build(scene), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// WriteFile writes the scene JSON to path.
func WriteFile(path string, scene *gridmap.Scene) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a document written by Write.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read scene: %w", err)
	}
	var doc Document
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode scene: %w", err)
	}
	return doc, nil
}

func coord(a hex.Axial) Coord { return Coord{Q: a.Q, R: a.R} }

func point(p hex.Point) Point { return Point{X: p.X, Y: p.Y} }

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	r, g, b := cf.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
