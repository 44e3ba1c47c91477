package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/gravitas-games/hexmark/internal/config"
	"github.com/gravitas-games/hexmark/internal/logging"
)

var version = "dev"

const usage = `usage: hexgrid [version|help]

Renders a flat-top hex grid with origin and axis finder patterns.
Configuration is read from $CONFIG_PATH (default ./configs/hexgrid.yaml);
built-in defaults are used when the file does not exist.
`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println("hexgrid", version)
			return
		case "help", "--help", "-h":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n\n%s", os.Args[1], usage)
			os.Exit(2)
		}
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexgrid.yaml"
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(nil, cfg.Log.Level, cfg.Log.Pretty); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("config", configPath).Str("version", version).Msg("starting hexgrid")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- run(ctx, cfg)
	}()

	select {
	case err = <-errChan:
	case <-ctx.Done():
		log.Warn().Msg("received signal, stopping render")
		err = <-errChan
	}
	if err != nil {
		log.Error().Err(err).Msg("render failed")
		stop()
		os.Exit(1)
	}
}

// loadConfig reads path, falling back to defaults when it does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
