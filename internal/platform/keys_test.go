package platform

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestKeyFromCode(t *testing.T) {
	tests := []struct {
		code string
		want gpucontext.Key
	}{
		{"Escape", gpucontext.KeyEscape},
		{"KeyA", gpucontext.KeyA},
		{"KeyZ", gpucontext.KeyZ},
		{"Digit0", gpucontext.Key0},
		{"Digit9", gpucontext.Key9},
		{"F1", gpucontext.KeyF1},
		{"F12", gpucontext.KeyF12},
		{"F13", gpucontext.KeyUnknown},
		{"Fx", gpucontext.KeyUnknown},
		{"Keya", gpucontext.KeyUnknown},
		{"ArrowUp", gpucontext.KeyUp},
		{"", gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFromCode(tt.code); got != tt.want {
			t.Errorf("keyFromCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDomModifiers(t *testing.T) {
	if got := domModifiers(false, false, false, false); got != 0 {
		t.Errorf("no modifiers = %v", got)
	}
	got := domModifiers(true, true, false, true)
	want := gpucontext.ModShift | gpucontext.ModControl | gpucontext.ModSuper
	if got != want {
		t.Errorf("domModifiers = %v, want %v", got, want)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Title != "triangle" || o.Width != 800 || o.Height != 600 || o.CanvasID != "canvas" {
		t.Errorf("withDefaults() = %+v", o)
	}
	o = Options{Title: "x", Width: 10, Height: 20, CanvasID: "c"}.withDefaults()
	if o.Title != "x" || o.Width != 10 || o.Height != 20 || o.CanvasID != "c" {
		t.Errorf("withDefaults() overwrote %+v", o)
	}
}
