package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gravitas-games/hexmark/internal/config"
	"github.com/gravitas-games/hexmark/internal/export"
	"github.com/gravitas-games/hexmark/internal/gridmap"
	"github.com/gravitas-games/hexmark/internal/logging"
	"github.com/gravitas-games/hexmark/internal/render"
	"github.com/gravitas-games/hexmark/pkg/finder"
	"github.com/gravitas-games/hexmark/pkg/hex"
)

// run renders the configured picture and writes the outputs.
func run(ctx context.Context, cfg *config.Config) error {
	log := logging.For("hexgrid")
	start := time.Now()

	scene, err := buildScene(cfg)
	if err != nil {
		return err
	}
	layout := scene.Grid().Layout()
	log.Info().
		Str("shape", cfg.Grid.Shape).
		Int("cells", scene.Grid().Len()).
		Float64("hex_size", layout.Size()).
		Int("finders", len(scene.Plans())).
		Msg("scene built")

	bg, err := render.ParseColor(cfg.Image.Background)
	if err != nil {
		return err
	}
	raster, err := render.NewRaster(cfg.Image.Width, cfg.Image.Height, cfg.Image.Supersample, bg, cfg.Grid.LineWidth)
	if err != nil {
		return err
	}
	if err := scene.Draw(ctx, raster); err != nil {
		return fmt.Errorf("failed to draw scene: %w", err)
	}

	if err := render.Save(cfg.Output.Path, raster.Image(), cfg.Output.JPEGQuality); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output.Path).Dur("took", time.Since(start)).Msg("image saved")

	if cfg.Output.ExportPath != "" {
		if err := export.WriteFile(cfg.Output.ExportPath, scene); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.ExportPath).Msg("geometry exported")
	}
	return nil
}

// buildScene lays out the configured grid and places the finder patterns.
func buildScene(cfg *config.Config) (*gridmap.Scene, error) {
	var cells []hex.Axial
	switch cfg.Grid.Shape {
	case config.ShapeParallelogram:
		cells = hex.Parallelogram(cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.RMin, cfg.Grid.RMax)
	default:
		cells = hex.Disk(hex.Axial{}, cfg.Grid.Radius)
	}

	var (
		layout hex.Layout
		err    error
	)
	if cfg.Grid.HexSize > 0 {
		layout, err = gridmap.CenteredLayout(cfg.Grid.HexSize, cfg.Image.Width, cfg.Image.Height)
	} else {
		layout, err = gridmap.FitLayout(cells, cfg.Image.Width, cfg.Image.Height, float64(cfg.Image.Margin))
	}
	if err != nil {
		return nil, err
	}

	var grid *gridmap.Grid
	switch cfg.Grid.Shape {
	case config.ShapeParallelogram:
		grid, err = gridmap.NewParallelogramGrid(layout, cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.RMin, cfg.Grid.RMax)
	default:
		grid, err = gridmap.NewHexagonGrid(layout, cfg.Grid.Radius)
	}
	if err != nil {
		return nil, err
	}

	var plans []finder.Plan
	if !cfg.Finder.Disabled {
		plans, err = finder.Plans(cfg.FinderRadius())
		if err != nil {
			return nil, fmt.Errorf("finder patterns: %w", err)
		}
	}

	style, err := styleFor(cfg)
	if err != nil {
		return nil, err
	}
	return gridmap.NewScene(grid, plans, cfg.Image.Width, cfg.Image.Height, style)
}

func styleFor(cfg *config.Config) (gridmap.Style, error) {
	var (
		s   gridmap.Style
		err error
	)
	if s.Outline, err = render.ParseColor(cfg.Grid.Outline); err != nil {
		return s, err
	}
	if s.Background, err = render.ParseColor(cfg.Image.Background); err != nil {
		return s, err
	}
	if s.LabelColor, err = render.ParseColor(cfg.Grid.LabelColor); err != nil {
		return s, err
	}
	s.Labels = cfg.Grid.Labels()
	return s, nil
}
