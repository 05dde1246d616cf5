//go:build !(js && wasm)

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/triangle"
)

// GLFW must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

type glfwWindow struct {
	win     *glfw.Window
	pending []triangle.Event
}

var _ triangle.Window = (*glfwWindow)(nil)

// Open creates a fixed-size GLFW window without a client API; the GPU
// surface is created from its native handles.
func Open(opts Options) (triangle.Window, error) {
	opts = opts.withDefaults()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %w", ErrUnavailable, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %w", ErrUnavailable, err)
	}

	w := &glfwWindow{win: win}
	win.SetCloseCallback(func(*glfw.Window) {
		w.pending = append(w.pending, triangle.Event{Kind: triangle.EventCloseRequested})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		w.pending = append(w.pending, triangle.Event{
			Kind:    triangle.EventKey,
			Key:     glfwKey(key),
			Mods:    glfwMods(mods),
			Pressed: action == glfw.Press,
		})
	})
	triangle.Logger().Info("window opened", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return w, nil
}

// Size returns the window size in screen coordinates.
func (w *glfwWindow) Size() (int, int) { return w.win.GetSize() }

// ScaleFactor returns the framebuffer to window size ratio.
func (w *glfwWindow) ScaleFactor() float64 {
	ww, _ := w.win.GetSize()
	fw, _ := w.win.GetFramebufferSize()
	if ww == 0 {
		return 1
	}
	return float64(fw) / float64(ww)
}

// RequestRedraw does nothing: the loop renders continuously.
func (w *glfwWindow) RequestRedraw() {}

// SurfaceHandles returns the platform display and window handles.
func (w *glfwWindow) SurfaceHandles() (display, window uintptr) {
	return nativeHandles(w.win)
}

// Run polls events until handler returns ControlExit. Queued close and key
// events are dispatched first, then one EventsCleared tick. The window is
// destroyed and GLFW terminated on return.
func (w *glfwWindow) Run(handler func(triangle.Event) triangle.ControlFlow) error {
	defer glfw.Terminate()
	defer w.win.Destroy()

	for {
		glfw.PollEvents()
		events := w.pending
		w.pending = nil
		if w.win.ShouldClose() && len(events) == 0 {
			events = append(events, triangle.Event{Kind: triangle.EventCloseRequested})
		}
		events = append(events, triangle.Event{Kind: triangle.EventsCleared})

		for _, ev := range events {
			if handler(ev) == triangle.ControlExit {
				return nil
			}
		}
	}
}

func glfwKey(k glfw.Key) gpucontext.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return gpucontext.KeyA + gpucontext.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return gpucontext.Key0 + gpucontext.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return gpucontext.KeyF1 + gpucontext.Key(k-glfw.KeyF1)
	}
	switch k {
	case glfw.KeyEscape:
		return gpucontext.KeyEscape
	case glfw.KeyEnter:
		return gpucontext.KeyEnter
	case glfw.KeySpace:
		return gpucontext.KeySpace
	case glfw.KeyTab:
		return gpucontext.KeyTab
	case glfw.KeyBackspace:
		return gpucontext.KeyBackspace
	case glfw.KeyLeft:
		return gpucontext.KeyLeft
	case glfw.KeyRight:
		return gpucontext.KeyRight
	case glfw.KeyUp:
		return gpucontext.KeyUp
	case glfw.KeyDown:
		return gpucontext.KeyDown
	default:
		return gpucontext.KeyUnknown
	}
}

func glfwMods(m glfw.ModifierKey) gpucontext.Modifiers {
	var out gpucontext.Modifiers
	if m&glfw.ModShift != 0 {
		out |= gpucontext.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= gpucontext.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= gpucontext.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= gpucontext.ModSuper
	}
	return out
}
