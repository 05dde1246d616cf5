package triangle

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// SurfaceTarget is anything a presentation surface can be created for.
// Display is the X11 Display* on Linux and 0 elsewhere; window is the
// HWND, NSView or X11 Window id.
type SurfaceTarget interface {
	SurfaceHandles() (display, window uintptr)
}

// Context owns the GPU instance, adapter, device and queue. It is created
// once at startup and shared by reference with the frame loop.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     wgpu.AdapterInfo
	format   gputypes.TextureFormat
}

var _ gpucontext.DeviceProvider = (*Context)(nil)

// NewContext performs the startup negotiation for target: instance,
// surface, adapter compatible with that surface, then device and queue.
// Every failure is terminal.
func NewContext(ctx context.Context, target SurfaceTarget, cfg Config) (*Context, *Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	power, err := cfg.powerPreference()
	if err != nil {
		return nil, nil, err
	}

	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: wgpu.BackendsPrimary})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: create instance: %w", ErrNoAdapter, err)
	}

	display, window := target.SurfaceHandles()
	raw, err := instance.CreateSurface(display, window)
	if err != nil {
		instance.Release()
		return nil, nil, fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}

	c := &Context{instance: instance}
	if err := c.negotiate(ctx, power, cfg.ForceFallbackAdapter, raw); err != nil {
		raw.Release()
		instance.Release()
		return nil, nil, err
	}
	return c, &Surface{raw: raw}, nil
}

// NewHeadlessContext negotiates an adapter and device without a surface,
// for offscreen rendering.
func NewHeadlessContext(ctx context.Context, cfg Config) (*Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	power, err := cfg.powerPreference()
	if err != nil {
		return nil, err
	}
	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: wgpu.BackendsPrimary})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrNoAdapter, err)
	}
	c := &Context{instance: instance, format: wgpu.TextureFormatRGBA8Unorm}
	if err := c.negotiate(ctx, power, cfg.ForceFallbackAdapter, nil); err != nil {
		instance.Release()
		return nil, err
	}
	return c, nil
}

func (c *Context) negotiate(ctx context.Context, power wgpu.PowerPreference, fallback bool, surface *wgpu.Surface) error {
	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      power,
		ForceFallbackAdapter: fallback,
		CompatibleSurface:    surface,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return ErrNoAdapter
	}
	if err := ctx.Err(); err != nil {
		adapter.Release()
		return err
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "triangle",
		RequiredLimits: wgpu.DefaultLimits(),
	})
	if err != nil {
		adapter.Release()
		return fmt.Errorf("%w: %w", ErrDeviceRequest, err)
	}
	queue := device.Queue()
	if queue == nil {
		device.Release()
		adapter.Release()
		return fmt.Errorf("%w: device has no queue", ErrDeviceRequest)
	}

	c.adapter, c.device, c.queue = adapter, device, queue
	c.info = adapter.Info()
	Logger().Info("adapter selected",
		"name", c.info.Name,
		"backend", c.info.Backend.String(),
		"type", c.info.DeviceType.String())
	return nil
}

// Device returns the logical device as a gpucontext token.
func (c *Context) Device() gpucontext.Device { return c.device }

// Queue returns the command queue as a gpucontext token.
func (c *Context) Queue() gpucontext.Queue { return c.queue }

// Adapter returns the adapter as a gpucontext token.
func (c *Context) Adapter() gpucontext.Adapter { return c.adapter }

// SurfaceFormat is the color format frames are rendered in.
func (c *Context) SurfaceFormat() gputypes.TextureFormat { return c.format }

// AdapterInfo summarizes the selected adapter.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	t := gpucontext.AdapterTypeUnknown
	switch c.info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		t = gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterInfo{Name: c.info.Name, Type: t}
}

// GPUDevice returns the concrete wgpu device.
func (c *Context) GPUDevice() *wgpu.Device { return c.device }

// GPUQueue returns the concrete wgpu queue.
func (c *Context) GPUQueue() *wgpu.Queue { return c.queue }

// Release frees the device, adapter and instance.
func (c *Context) Release() {
	if c == nil {
		return
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
