package triangle

import (
	"context"
	"fmt"

	"github.com/gogpu/wgpu"
)

// copyAlignment is the size granularity of mapped-at-creation buffers.
const copyAlignment = 4

// Geometry is a GPU buffer written once at creation and sealed.
// It has no write methods: updating geometry means uploading a new buffer.
type Geometry struct {
	buf   *wgpu.Buffer
	usage wgpu.BufferUsage
	// size is the payload length; the allocation may be padded.
	size  uint64
	count int
}

// Buffer returns the underlying buffer.
func (g *Geometry) Buffer() *wgpu.Buffer { return g.buf }

// Size is the payload length in bytes.
func (g *Geometry) Size() uint64 { return g.size }

// Count is the number of elements uploaded.
func (g *Geometry) Count() int { return g.count }

// Usage is the usage the buffer was created with.
func (g *Geometry) Usage() wgpu.BufferUsage { return g.usage }

// Release frees the buffer.
func (g *Geometry) Release() {
	if g == nil || g.buf == nil {
		return
	}
	g.buf.Release()
	g.buf = nil
}

// UploadVertices allocates a buffer for data with usage (Vertex is
// always added), fills it through a mapped range and seals it.
func UploadVertices(device *wgpu.Device, label string, usage wgpu.BufferUsage, data []float32) (*Geometry, error) {
	size := uint64(len(data)) * 4
	return upload(device, label, usage|wgpu.BufferUsageVertex, size, len(data), func(b []byte) error {
		v, err := NewFloat32View(b)
		if err != nil {
			return err
		}
		_, err = v.CopyFrom(data)
		return err
	})
}

// UploadIndices allocates a uint16 index buffer. The allocation is padded
// to 4 bytes; the padding is zero and never drawn.
func UploadIndices(device *wgpu.Device, label string, usage wgpu.BufferUsage, data []uint16) (*Geometry, error) {
	size := uint64(len(data)) * 2
	return upload(device, label, usage|wgpu.BufferUsageIndex, size, len(data), func(b []byte) error {
		v, err := NewUint16View(b)
		if err != nil {
			return err
		}
		_, err = v.CopyFrom(data)
		return err
	})
}

func upload(device *wgpu.Device, label string, usage wgpu.BufferUsage, size uint64, count int, fill func([]byte) error) (*Geometry, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: %s: empty data", ErrBufferUpload, label)
	}
	alloc := alignUp(size, copyAlignment)

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             alloc,
		Usage:            usage,
		MappedAtCreation: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrBufferUpload, label, err)
	}

	if err := writeMapped(buf, alloc, fill); err != nil {
		buf.Release()
		return nil, fmt.Errorf("%w: %s: %w", ErrBufferUpload, label, err)
	}

	Logger().Debug("buffer uploaded", "label", label, "bytes", size, "allocated", alloc)
	return &Geometry{buf: buf, usage: usage, size: size, count: count}, nil
}

// writeMapped fills the mapped range and unmaps, even when fill fails.
func writeMapped(buf *wgpu.Buffer, size uint64, fill func([]byte) error) error {
	mr, err := buf.MappedRange(0, size)
	if err != nil {
		_ = buf.Unmap()
		return fmt.Errorf("mapped range: %w", err)
	}
	fillErr := fill(mr.Bytes())
	releaseRange(mr)
	if err := buf.Unmap(); err != nil {
		return fmt.Errorf("unmap: %w", err)
	}
	return fillErr
}

// ReadBuffer copies size bytes of src (which needs CopySrc usage) into a
// staging buffer on the GPU and returns them once the copy completes.
func ReadBuffer(ctx context.Context, device *wgpu.Device, src *wgpu.Buffer, size uint64) ([]byte, error) {
	alloc := alignUp(size, copyAlignment)
	staging, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "readback",
		Size:  alloc,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("create readback buffer: %w", err)
	}
	defer staging.Release()

	enc, err := device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "readback"})
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	enc.CopyBufferToBuffer(src, 0, staging, 0, alloc)
	if err := submitEncoded(enc.Finish, enc.DiscardEncoding, queueSubmit(device.Queue())); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	return mapRead(ctx, staging, alloc, size)
}

// mapRead maps a MapRead buffer and copies out the first n bytes.
func mapRead(ctx context.Context, buf *wgpu.Buffer, alloc, n uint64) ([]byte, error) {
	if err := buf.Map(ctx, wgpu.MapModeRead, 0, alloc); err != nil {
		return nil, fmt.Errorf("map readback: %w", err)
	}
	defer func() { _ = buf.Unmap() }()

	mr, err := buf.MappedRange(0, alloc)
	if err != nil {
		return nil, fmt.Errorf("readback range: %w", err)
	}
	defer releaseRange(mr)

	out := make([]byte, n)
	copy(out, mr.Bytes())
	return out, nil
}

func alignUp(n, a uint64) uint64 {
	return (n + a - 1) / a * a
}
