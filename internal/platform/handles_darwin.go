//go:build darwin

package platform

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/triangle"
)

var (
	quartzOnce sync.Once
	quartzErr  error

	selContentView        = objc.RegisterName("contentView")
	selSetWantsLayer      = objc.RegisterName("setWantsLayer:")
	selSetLayer           = objc.RegisterName("setLayer:")
	selLayer              = objc.RegisterName("layer")
	selBackingScaleFactor = objc.RegisterName("backingScaleFactor")
	selSetContentsScale   = objc.RegisterName("setContentsScale:")
)

func loadQuartzCore() error {
	quartzOnce.Do(func() {
		_, quartzErr = purego.Dlopen("/System/Library/Frameworks/QuartzCore.framework/QuartzCore",
			purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	})
	return quartzErr
}

// nativeHandles backs the window's content view with a CAMetalLayer and
// returns that layer, which is what the Metal surface expects.
func nativeHandles(w *glfw.Window) (display, window uintptr) {
	if err := loadQuartzCore(); err != nil {
		triangle.Logger().Error("load QuartzCore", "err", err)
		return 0, 0
	}
	nsWindow := objc.ID(w.GetCocoaWindow())
	view := nsWindow.Send(selContentView)
	if view == 0 {
		return 0, 0
	}

	layer := objc.ID(objc.GetClass("CAMetalLayer")).Send(selLayer)
	scale := objc.Send[float64](nsWindow, selBackingScaleFactor)
	layer.Send(selSetContentsScale, scale)
	hostLayer(view, layer)
	return 0, uintptr(layer)
}

type objcSender interface {
	Send(sel objc.SEL, args ...any) objc.ID
}

// hostLayer makes view layer-hosting: the layer is assigned before
// wantsLayer is set, so AppKit keeps it instead of creating its own.
func hostLayer(view objcSender, layer objc.ID) {
	view.Send(selSetLayer, layer)
	view.Send(selSetWantsLayer, true)
}
