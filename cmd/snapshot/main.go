//go:build !(js && wasm)

// Command snapshot renders the triangle offscreen and saves it as PNG, BMP
// or TIFF (chosen by the output extension). It needs no window and falls
// back to the software renderer when no GPU is present.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/snapshot"
)

func main() {
	var (
		output      = flag.String("o", "triangle.png", "output file (.png, .bmp, .tiff)")
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		shader      = flag.String("shader", triangle.ShaderSetPrecompiled, "shader variant: precompiled or source")
		topology    = flag.String("topology", string(triangle.TopologyList), "primitive topology: list or strip")
		supersample = flag.Int("supersample", 1, "render at N times the size and scale down")
		fallback    = flag.Bool("fallback", false, "force the fallback (software) adapter")
		verbose     = flag.Bool("v", false, "log GPU setup")
	)
	flag.Parse()

	if *verbose {
		triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := triangle.DefaultConfig().Apply(
		triangle.WithSize(*width, *height),
		triangle.WithShader(*shader),
		triangle.WithTopology(triangle.Topology(*topology)),
		triangle.WithFallbackAdapter(*fallback),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	img, err := snapshot.Render(ctx, cfg, snapshot.Options{
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := snapshot.Save(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Snapshot saved to %s (%dx%d)\n", *output, *width, *height)
}
