//go:build js && wasm

package platform

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/triangle"
)

type canvasWindow struct {
	canvas js.Value
}

var _ triangle.Window = (*canvasWindow)(nil)

// Open binds the canvas element with id opts.CanvasID, sizing its drawing
// buffer to the requested size times the device pixel ratio.
func Open(opts Options) (triangle.Window, error) {
	opts = opts.withDefaults()
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return nil, fmt.Errorf("%w: no document", ErrUnavailable)
	}
	canvas := doc.Call("getElementById", opts.CanvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("%w: no canvas #%s", ErrUnavailable, opts.CanvasID)
	}
	if js.Global().Get("navigator").Get("gpu").IsUndefined() {
		return nil, fmt.Errorf("%w: browser has no WebGPU", ErrUnavailable)
	}

	ratio := js.Global().Get("devicePixelRatio").Float()
	if ratio <= 0 {
		ratio = 1
	}
	canvas.Set("width", int(float64(opts.Width)*ratio))
	canvas.Set("height", int(float64(opts.Height)*ratio))
	canvas.Get("style").Set("width", fmt.Sprintf("%dpx", opts.Width))
	canvas.Get("style").Set("height", fmt.Sprintf("%dpx", opts.Height))
	doc.Set("title", opts.Title)

	return &canvasWindow{canvas: canvas}, nil
}

// Size returns the CSS size of the canvas.
func (w *canvasWindow) Size() (int, int) {
	return w.canvas.Get("clientWidth").Int(), w.canvas.Get("clientHeight").Int()
}

// ScaleFactor returns window.devicePixelRatio.
func (w *canvasWindow) ScaleFactor() float64 {
	return js.Global().Get("devicePixelRatio").Float()
}

// RequestRedraw does nothing: frames follow requestAnimationFrame.
func (w *canvasWindow) RequestRedraw() {}

// SurfaceHandles returns zero handles. A canvas has no native window
// handle, and the browser GPU backend does not create surfaces yet.
func (w *canvasWindow) SurfaceHandles() (display, window uintptr) {
	return 0, 0
}

// Run dispatches keyboard and unload events and one EventsCleared per
// animation frame, blocking until handler returns ControlExit.
func (w *canvasWindow) Run(handler func(triangle.Event) triangle.ControlFlow) error {
	done := make(chan struct{})
	exited := false
	dispatch := func(ev triangle.Event) {
		if exited {
			return
		}
		if handler(ev) == triangle.ControlExit {
			exited = true
			close(done)
		}
	}

	key := func(pressed bool) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			e := args[0]
			if e.Get("repeat").Bool() {
				return nil
			}
			dispatch(triangle.Event{
				Kind: triangle.EventKey,
				Key:  keyFromCode(e.Get("code").String()),
				Mods: domModifiers(e.Get("shiftKey").Bool(), e.Get("ctrlKey").Bool(),
					e.Get("altKey").Bool(), e.Get("metaKey").Bool()),
				Pressed: pressed,
			})
			return nil
		})
	}
	keyDown, keyUp := key(true), key(false)
	unload := js.FuncOf(func(js.Value, []js.Value) any {
		dispatch(triangle.Event{Kind: triangle.EventCloseRequested})
		return nil
	})

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		dispatch(triangle.Event{Kind: triangle.EventsCleared})
		if !exited {
			js.Global().Call("requestAnimationFrame", frame)
		}
		return nil
	})

	win := js.Global()
	win.Call("addEventListener", "keydown", keyDown)
	win.Call("addEventListener", "keyup", keyUp)
	win.Call("addEventListener", "beforeunload", unload)
	win.Call("requestAnimationFrame", frame)

	<-done

	win.Call("removeEventListener", "keydown", keyDown)
	win.Call("removeEventListener", "keyup", keyUp)
	win.Call("removeEventListener", "beforeunload", unload)
	keyDown.Release()
	keyUp.Release()
	unload.Release()
	frame.Release()
	return nil
}
