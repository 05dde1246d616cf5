//go:build darwin

package platform

import (
	"testing"

	"github.com/ebitengine/purego/objc"
)

type recordingView struct{ sels []objc.SEL }

func (v *recordingView) Send(sel objc.SEL, _ ...any) objc.ID {
	v.sels = append(v.sels, sel)
	return 0
}

func TestHostLayerOrder(t *testing.T) {
	var v recordingView
	hostLayer(&v, objc.ID(1))
	if len(v.sels) != 2 || v.sels[0] != selSetLayer || v.sels[1] != selSetWantsLayer {
		t.Errorf("messages %v, want setLayer: then setWantsLayer:", v.sels)
	}
}
