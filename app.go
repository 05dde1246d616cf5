package triangle

import (
	"context"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
)

// EventKind classifies an Event.
type EventKind uint8

const (
	// EventsCleared is the per-iteration tick that triggers rendering.
	EventsCleared EventKind = iota
	EventCloseRequested
	EventKey
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventsCleared:
		return "EventsCleared"
	case EventCloseRequested:
		return "CloseRequested"
	case EventKey:
		return "Key"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one window event.
type Event struct {
	Kind EventKind
	// Key, Mods and Pressed are set for EventKey.
	Key     gpucontext.Key
	Mods    gpucontext.Modifiers
	Pressed bool
}

// ControlFlow tells the window whether to keep dispatching.
type ControlFlow uint8

const (
	ControlPoll ControlFlow = iota
	ControlExit
)

// Window is the windowing collaborator. Run blocks, calling handler
// synchronously for every event until the handler returns ControlExit or
// the window goes away.
type Window interface {
	gpucontext.WindowProvider
	SurfaceTarget
	Run(handler func(Event) ControlFlow) error
}

// Run bootstraps the device, surface and scene for w and renders until
// the window is closed or Escape is pressed. A startup or frame error
// stops the loop and is returned; GPU objects are released on return.
func Run(ctx context.Context, w Window, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, surface, err := NewContext(ctx, w, cfg)
	if err != nil {
		return err
	}
	defer c.Release()
	defer surface.Release()

	width, height := physicalSize(w)
	if err := surface.Configure(c, width, height); err != nil {
		return err
	}

	scene, err := NewScene(c, cfg)
	if err != nil {
		return err
	}
	defer scene.Release()

	loop := NewFrameLoop(c, surface, scene)
	err = drive(ctx, w, loop.RenderFrame)
	Logger().Info("run loop finished", "frames", loop.Frames())
	return err
}

func physicalSize(w gpucontext.WindowProvider) (int, int) {
	width, height := w.Size()
	scale := w.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(width) * scale)), int(math.Round(float64(height) * scale))
}

// drive dispatches window events: close and Escape stop the loop within
// the same iteration, EventsCleared renders one frame. Cancelling ctx
// acts like a close request.
func drive(ctx context.Context, w Window, render func() error) error {
	var frameErr error
	err := w.Run(func(ev Event) ControlFlow {
		if ctx.Err() != nil {
			return ControlExit
		}
		switch ev.Kind {
		case EventCloseRequested:
			Logger().Info("close requested")
			return ControlExit
		case EventKey:
			if ev.Pressed && ev.Key == gpucontext.KeyEscape {
				Logger().Info("escape pressed")
				return ControlExit
			}
		case EventsCleared:
			if err := render(); err != nil {
				frameErr = err
				return ControlExit
			}
		}
		return ControlPoll
	})
	if frameErr != nil {
		return frameErr
	}
	return err
}
