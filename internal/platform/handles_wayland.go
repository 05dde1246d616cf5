//go:build (linux || freebsd || netbsd || openbsd) && wayland

package platform

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())), uintptr(unsafe.Pointer(w.GetWaylandWindow()))
}
