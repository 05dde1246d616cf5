package triangle

import (
	"errors"
	"testing"

	"github.com/gogpu/wgpu"
)

type fakeTarget struct {
	acquireErr error
	acquired   int
	presented  int
	discarded  int
}

func (f *fakeTarget) AcquireView() (*wgpu.TextureView, error) {
	f.acquired++
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	return nil, nil
}

func (f *fakeTarget) Present() error { f.presented++; return nil }

func (f *fakeTarget) Discard() { f.discarded++ }

func TestFrameStateString(t *testing.T) {
	tests := []struct {
		s    FrameState
		want string
	}{
		{FrameIdle, "Idle"},
		{FrameAcquired, "FrameAcquired"},
		{FrameRecordingPass, "RecordingPass"},
		{FrameSubmitted, "Submitted"},
		{FrameState(9), "FrameState(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("FrameState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestRenderFrameAcquireFailure(t *testing.T) {
	for _, cause := range []error{wgpu.ErrSurfaceLost, wgpu.ErrSurfaceOutdated} {
		t.Run(cause.Error(), func(t *testing.T) {
			target := &fakeTarget{acquireErr: cause}
			loop := &FrameLoop{target: target, scene: &Scene{}}

			err := loop.RenderFrame()
			if !errors.Is(err, ErrFrameAcquire) {
				t.Fatalf("RenderFrame() = %v, want ErrFrameAcquire", err)
			}
			if !errors.Is(err, cause) || !SurfaceLost(err) {
				t.Errorf("RenderFrame() = %v, want cause %v preserved", err, cause)
			}
			if target.acquired != 1 {
				t.Errorf("acquired %d times, want exactly 1 (no retry)", target.acquired)
			}
			if target.presented != 0 || loop.Frames() != 0 {
				t.Error("failed frame must not be presented")
			}
			if loop.State() != FrameIdle {
				t.Errorf("State() = %s, want Idle", loop.State())
			}
		})
	}
}

func TestRenderFrameTimeoutIsNotSurfaceLoss(t *testing.T) {
	loop := &FrameLoop{target: &fakeTarget{acquireErr: wgpu.ErrTimeout}, scene: &Scene{}}
	err := loop.RenderFrame()
	if !errors.Is(err, ErrFrameAcquire) {
		t.Fatalf("RenderFrame() = %v, want ErrFrameAcquire", err)
	}
	if SurfaceLost(err) {
		t.Error("SurfaceLost(timeout) = true")
	}
}

func TestRenderFrameOutOfOrder(t *testing.T) {
	for _, s := range []FrameState{FrameAcquired, FrameRecordingPass, FrameSubmitted} {
		target := &fakeTarget{}
		loop := &FrameLoop{target: target, scene: &Scene{}, state: s}
		if err := loop.RenderFrame(); !errors.Is(err, ErrFrameState) {
			t.Errorf("RenderFrame() in %s = %v, want ErrFrameState", s, err)
		}
		if target.acquired != 0 {
			t.Errorf("RenderFrame() in %s acquired a frame", s)
		}
	}
}

type fakeCommands struct{ released int }

func (c *fakeCommands) Release() { c.released++ }

func TestSubmitEncodedReleasesOnFailure(t *testing.T) {
	errFinish := errors.New("finish rejected")
	errSubmit := errors.New("queue rejected")

	tests := []struct {
		name         string
		finishErr    error
		submitErr    error
		wantErr      error
		wantDiscard  int
		wantSubmit   int
		wantReleased int
	}{
		{"ok", nil, nil, nil, 0, 1, 0},
		{"finish fails", errFinish, nil, errFinish, 1, 0, 0},
		{"submit fails", nil, errSubmit, errSubmit, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &fakeCommands{}
			var discarded, submitted int
			err := submitEncoded(
				func() (*fakeCommands, error) {
					if tt.finishErr != nil {
						return nil, tt.finishErr
					}
					return cmd, nil
				},
				func() { discarded++ },
				func(*fakeCommands) error { submitted++; return tt.submitErr },
			)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("submitEncoded() = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("submitEncoded() = %v, want %v", err, tt.wantErr)
			}
			if discarded != tt.wantDiscard || submitted != tt.wantSubmit || cmd.released != tt.wantReleased {
				t.Errorf("discarded %d, submitted %d, released %d; want %d, %d, %d",
					discarded, submitted, cmd.released, tt.wantDiscard, tt.wantSubmit, tt.wantReleased)
			}
		})
	}
}
