//go:build windows

package platform

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return 0, uintptr(unsafe.Pointer(w.GetWin32Window()))
}
