package triangle

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

const (
	bytesPerPixel = 4
	// Rows of a texture-to-buffer copy start on this boundary.
	rowAlignment = 256
)

// OffscreenFormat is the color format of an Offscreen target.
const OffscreenFormat = gputypes.TextureFormatRGBA8Unorm

// Offscreen is a FrameTarget backed by a plain texture. Presenting is a
// no-op; ReadPixels copies the last frame back to the host.
type Offscreen struct {
	device  *wgpu.Device
	texture *wgpu.Texture
	view    *wgpu.TextureView
	width   uint32
	height  uint32
	// packed is set for CPU adapters, which write copied rows back to
	// back regardless of the requested row pitch.
	packed bool
}

var _ FrameTarget = (*Offscreen)(nil)

// NewOffscreen creates a width x height RGBA8 render target on c.
func NewOffscreen(c *Context, width, height int) (*Offscreen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: offscreen size %dx%d", ErrSurfaceConfig, width, height)
	}
	w, h := uint32(width), uint32(height) //nolint:gosec // checked positive above

	tex, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "offscreen",
		Size:          wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        OffscreenFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: offscreen texture: %w", ErrSurfaceConfig, err)
	}
	view, err := c.device.CreateTextureView(tex, nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("%w: offscreen view: %w", ErrSurfaceConfig, err)
	}
	return &Offscreen{
		device:  c.device,
		texture: tex,
		view:    view,
		width:   w,
		height:  h,
		packed:  c.info.DeviceType == gputypes.DeviceTypeCPU,
	}, nil
}

// AcquireView returns the single offscreen view.
func (o *Offscreen) AcquireView() (*wgpu.TextureView, error) {
	if o.view == nil {
		return nil, wgpu.ErrReleased
	}
	return o.view, nil
}

// Present does nothing; the texture keeps the frame.
func (o *Offscreen) Present() error { return nil }

// Discard does nothing.
func (o *Offscreen) Discard() {}

// Size returns the target size in pixels.
func (o *Offscreen) Size() (width, height int) { return int(o.width), int(o.height) }

// ReadPixels copies the texture into tightly packed RGBA rows.
func (o *Offscreen) ReadPixels(ctx context.Context) ([]byte, error) {
	row := o.width * bytesPerPixel
	stride := uint32(alignUp(uint64(row), rowAlignment))
	size := uint64(stride) * uint64(o.height)

	staging, err := o.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "offscreen readback",
		Size:  size,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("create readback buffer: %w", err)
	}
	defer staging.Release()

	enc, err := o.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "offscreen readback"})
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	enc.CopyTextureToBuffer(o.texture, staging, []wgpu.BufferTextureCopy{{
		BufferLayout: wgpu.ImageDataLayout{
			BytesPerRow:  stride,
			RowsPerImage: o.height,
		},
		TextureBase: wgpu.ImageCopyTexture{Texture: o.texture},
		Size:        wgpu.Extent3D{Width: o.width, Height: o.height, DepthOrArrayLayers: 1},
	}})
	if err := submitEncoded(enc.Finish, enc.DiscardEncoding, queueSubmit(o.device.Queue())); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	data, err := mapRead(ctx, staging, size, size)
	if err != nil {
		return nil, err
	}
	if o.packed {
		stride = row
	}
	return unpadRows(data, row, stride, o.height), nil
}

// unpadRows drops the padding after each row of a copy made with the
// given stride.
func unpadRows(data []byte, row, stride, height uint32) []byte {
	n := int(row) * int(height)
	if stride == row {
		return data[:n]
	}
	out := make([]byte, n)
	for y := range int(height) {
		copy(out[y*int(row):(y+1)*int(row)], data[y*int(stride):])
	}
	return out
}

// Release frees the view and texture.
func (o *Offscreen) Release() {
	if o == nil {
		return
	}
	if o.view != nil {
		o.view.Release()
		o.view = nil
	}
	if o.texture != nil {
		o.texture.Release()
		o.texture = nil
	}
}
