package triangle

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// FrameState is the position of a FrameLoop within one frame.
type FrameState uint8

const (
	FrameIdle FrameState = iota
	FrameAcquired
	FrameRecordingPass
	FrameSubmitted
)

// String returns the state name.
func (s FrameState) String() string {
	switch s {
	case FrameIdle:
		return "Idle"
	case FrameAcquired:
		return "FrameAcquired"
	case FrameRecordingPass:
		return "RecordingPass"
	case FrameSubmitted:
		return "Submitted"
	default:
		return fmt.Sprintf("FrameState(%d)", s)
	}
}

// FrameTarget hands out one drawable view per frame. A view is valid
// until Present or Discard.
type FrameTarget interface {
	AcquireView() (*wgpu.TextureView, error)
	Present() error
	Discard()
}

// Scene is the fixed content of every frame.
type Scene struct {
	Pipeline   *Pipeline
	Vertices   *Geometry
	Indices    *Geometry // strip topology only
	ClearColor [4]float64

	vs, fs *ShaderModule
}

// Record encodes one render pass into enc: clear, bind, draw three
// vertices once.
func (s *Scene) Record(enc *wgpu.CommandEncoder, view *wgpu.TextureView) error {
	pass, err := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "triangle",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: s.ClearColor[0], G: s.ClearColor[1],
				B: s.ClearColor[2], A: s.ClearColor[3],
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}

	pass.SetPipeline(s.Pipeline.Handle())
	pass.SetVertexBuffer(0, s.Vertices.Buffer(), 0)
	if s.Pipeline.Indexed() {
		pass.SetIndexBuffer(s.Indices.Buffer(), gputypes.IndexFormatUint16, 0)
		pass.DrawIndexed(TriangleVertexCount, 1, 0, 0, 0)
	} else {
		pass.Draw(TriangleVertexCount, 1, 0, 0)
	}

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}
	return nil
}

// FrameLoop renders a Scene into a FrameTarget once per call to
// RenderFrame. It is not safe for concurrent use.
type FrameLoop struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	target FrameTarget
	scene  *Scene

	state  FrameState
	frames uint64
}

// NewFrameLoop returns an idle loop.
func NewFrameLoop(c *Context, target FrameTarget, scene *Scene) *FrameLoop {
	return &FrameLoop{
		device: c.device,
		queue:  c.queue,
		target: target,
		scene:  scene,
	}
}

// State returns the current state.
func (l *FrameLoop) State() FrameState { return l.state }

// Frames returns the number of frames presented.
func (l *FrameLoop) Frames() uint64 { return l.frames }

// RenderFrame runs Idle -> FrameAcquired -> RecordingPass -> Submitted
// -> Idle. Any error is fatal: the loop is left in the failing state and
// nothing is retried.
func (l *FrameLoop) RenderFrame() error {
	if l.state != FrameIdle {
		return fmt.Errorf("%w: frame requested in state %s", ErrFrameState, l.state)
	}

	view, err := l.target.AcquireView()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFrameAcquire, err)
	}
	l.state = FrameAcquired

	enc, err := l.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame"})
	if err != nil {
		l.target.Discard()
		return fmt.Errorf("%w: create encoder: %w", ErrSubmit, err)
	}
	l.state = FrameRecordingPass

	if err := l.scene.Record(enc, view); err != nil {
		enc.DiscardEncoding()
		l.target.Discard()
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	if err := submitEncoded(enc.Finish, enc.DiscardEncoding, queueSubmit(l.queue)); err != nil {
		l.target.Discard()
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	l.state = FrameSubmitted

	if err := l.target.Present(); err != nil {
		return fmt.Errorf("%w: present: %w", ErrSubmit, err)
	}
	l.state = FrameIdle
	l.frames++
	Logger().Debug("frame presented", "frame", l.frames)
	return nil
}

// submitEncoded finishes an encoder and hands the command buffer to submit.
// A failed Finish discards the encoder; a buffer the queue did not take is
// released.
func submitEncoded[C interface{ Release() }](finish func() (C, error), discard func(), submit func(C) error) error {
	cmd, err := finish()
	if err != nil {
		discard()
		return fmt.Errorf("finish: %w", err)
	}
	if err := submit(cmd); err != nil {
		cmd.Release()
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}

func queueSubmit(q *wgpu.Queue) func(*wgpu.CommandBuffer) error {
	return func(cmd *wgpu.CommandBuffer) error {
		_, err := q.Submit(cmd)
		return err
	}
}

// SurfaceLost reports whether err came from a lost or outdated surface.
func SurfaceLost(err error) bool {
	return errors.Is(err, wgpu.ErrSurfaceLost) || errors.Is(err, wgpu.ErrSurfaceOutdated)
}
