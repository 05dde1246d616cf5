package triangle

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// PreferredSurfaceFormat is used whenever the surface supports it.
const PreferredSurfaceFormat = wgpu.TextureFormatBGRA8Unorm

// Surface is the drawable swap sequence of one window.
type Surface struct {
	raw    *wgpu.Surface
	config wgpu.SurfaceConfiguration
	ready  bool

	current *wgpu.SurfaceTexture
	view    *wgpu.TextureView
}

var _ FrameTarget = (*Surface)(nil)

// Configure binds the surface to device at width x height with strict FIFO
// presentation. It must run before the first frame; resizes are not
// handled.
func (s *Surface) Configure(c *Context, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrSurfaceConfig, width, height)
	}

	format := PreferredSurfaceFormat
	alpha := gputypes.CompositeAlphaModeOpaque
	if caps := c.adapter.GetSurfaceCapabilities(s.raw); caps != nil {
		format = pickFormat(caps.Formats)
		if len(caps.PresentModes) > 0 && !slices.Contains(caps.PresentModes, wgpu.PresentModeFifo) {
			return fmt.Errorf("%w: FIFO present mode unsupported (have %v)", ErrSurfaceConfig, caps.PresentModes)
		}
		if len(caps.AlphaModes) > 0 && !slices.Contains(caps.AlphaModes, alpha) {
			alpha = caps.AlphaModes[0]
		}
	}

	cfg := wgpu.SurfaceConfiguration{
		Width:       uint32(width),  //nolint:gosec // checked positive above
		Height:      uint32(height), //nolint:gosec // checked positive above
		Format:      format,
		Usage:       wgpu.TextureUsageRenderAttachment,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alpha,
	}
	if err := s.raw.Configure(c.device, &cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceConfig, err)
	}
	s.config = cfg
	s.ready = true
	c.format = format

	Logger().Info("surface configured",
		"width", width, "height", height,
		"format", format.String(), "present_mode", "fifo")
	return nil
}

func pickFormat(formats []gputypes.TextureFormat) gputypes.TextureFormat {
	if len(formats) == 0 || slices.Contains(formats, PreferredSurfaceFormat) {
		return PreferredSurfaceFormat
	}
	Logger().Warn("preferred surface format unavailable, using first supported",
		"preferred", PreferredSurfaceFormat.String(), "using", formats[0].String())
	return formats[0]
}

// AcquireView takes the next drawable frame. With FIFO presentation this
// blocks until the swap sequence has room. A lost or outdated surface is
// returned as is; the surface is never reconfigured here.
func (s *Surface) AcquireView() (*wgpu.TextureView, error) {
	if !s.ready {
		return nil, fmt.Errorf("%w: surface not configured", ErrFrameState)
	}
	if s.current != nil {
		return nil, fmt.Errorf("%w: previous frame not presented", ErrFrameState)
	}
	tex, suboptimal, err := s.raw.GetCurrentTexture()
	if err != nil {
		return nil, err
	}
	if suboptimal {
		Logger().Debug("surface texture suboptimal")
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		s.raw.DiscardTexture()
		return nil, fmt.Errorf("create frame view: %w", err)
	}
	s.current = tex
	s.view = view
	return view, nil
}

// Present queues the acquired frame for display and releases it.
func (s *Surface) Present() error {
	if s.current == nil {
		return fmt.Errorf("%w: no frame to present", ErrFrameState)
	}
	err := s.raw.Present(s.current)
	s.dropFrame()
	return err
}

// Discard gives the acquired frame back without presenting it.
func (s *Surface) Discard() {
	if s.current == nil {
		return
	}
	s.raw.DiscardTexture()
	s.dropFrame()
}

func (s *Surface) dropFrame() {
	if s.view != nil {
		s.view.Release()
		s.view = nil
	}
	s.current = nil
}

// Configuration returns the active configuration.
func (s *Surface) Configuration() wgpu.SurfaceConfiguration { return s.config }

// Configured reports whether Configure succeeded.
func (s *Surface) Configured() bool { return s.ready }

// Raw returns the underlying wgpu surface.
func (s *Surface) Raw() *wgpu.Surface { return s.raw }

// Release unconfigures and frees the surface.
func (s *Surface) Release() {
	if s == nil || s.raw == nil {
		return
	}
	s.Discard()
	if s.ready {
		s.raw.Unconfigure()
		s.ready = false
	}
	s.raw.Release()
	s.raw = nil
}
