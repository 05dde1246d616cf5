// Command triangle opens a window and draws one colored triangle until the
// window is closed or Escape is pressed.
//
// It takes no flags. Settings come from a YAML file named by
// TRIANGLE_CONFIG and the TRIANGLE_SHADER, TRIANGLE_TOPOLOGY and
// TRIANGLE_LOG environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/platform"
)

func main() {
	if err := run(context.Background(), os.LookupEnv, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "triangle: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lookup func(string) (string, bool), logOut io.Writer) error {
	cfg, err := loadConfig(lookup)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, logOut); err != nil {
		return err
	}

	return guard(func() error {
		win, err := platform.Open(platform.FromConfig(cfg))
		if err != nil {
			return err
		}
		return triangle.Run(ctx, win, cfg)
	})
}

// loadConfig layers the optional YAML file and the environment over the
// defaults.
func loadConfig(lookup func(string) (string, bool)) (triangle.Config, error) {
	cfg := triangle.DefaultConfig()
	if path, ok := lookup(triangle.EnvConfig); ok && path != "" {
		var err error
		if cfg, err = triangle.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.ApplyEnv(lookup)
	return cfg, cfg.Validate()
}

func setupLogging(cfg triangle.Config, w io.Writer) error {
	level, enabled, err := cfg.Level()
	if err != nil || !enabled {
		return err
	}
	triangle.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
