// Package platform opens the window the triangle renders into: a GLFW
// window on desktop systems and an HTML canvas in the browser.
package platform

import (
	"errors"

	"github.com/gogpu/triangle"
)

// ErrUnavailable is returned when no window can be opened on this system.
var ErrUnavailable = errors.New("platform: windowing unavailable")

// Options describe the window to open.
type Options struct {
	Title  string
	Width  int
	Height int
	// CanvasID selects the canvas element in the browser. Empty means
	// "canvas".
	CanvasID string
}

// FromConfig fills Options from a triangle config.
func FromConfig(cfg triangle.Config) Options {
	return Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "triangle"
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.CanvasID == "" {
		o.CanvasID = "canvas"
	}
	return o
}
