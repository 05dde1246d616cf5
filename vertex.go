package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/triangle/internal/shaderc"
)

// TriangleVertices holds three vertices, each a vec4 position followed by
// a vec4 color: red at bottom right, green at bottom left, blue at top.
var TriangleVertices = [...]float32{
	1, -1, 0, 1, 1, 0, 0, 1,
	-1, -1, 0, 1, 0, 1, 0, 1,
	0, 1, 0, 1, 0, 0, 1, 1,
}

// TriangleIndices drives the strip variant. Three indices form exactly one
// strip triangle.
var TriangleIndices = [...]uint16{0, 1, 2}

// TriangleVertexCount is the number of vertices (or indices) per draw.
const TriangleVertexCount = 3

// ScalarKind is the numeric class a vertex input is read as.
type ScalarKind = shaderc.ScalarKind

const (
	ScalarFloat = shaderc.ScalarFloat
	ScalarSint  = shaderc.ScalarSint
	ScalarUint  = shaderc.ScalarUint
)

// VertexAttribute places one shader input inside a vertex.
type VertexAttribute struct {
	Offset   uint64
	Format   gputypes.VertexFormat
	Location uint32
}

// VertexLayout is the ordered attribute list of one vertex buffer.
type VertexLayout struct {
	Attributes []VertexAttribute
}

// TriangleLayout describes TriangleVertices: position at location 0,
// color at location 1.
func TriangleLayout() VertexLayout {
	return VertexLayout{Attributes: []VertexAttribute{
		{Offset: 0, Format: gputypes.VertexFormatFloat32x4, Location: 0},
		{Offset: 16, Format: gputypes.VertexFormatFloat32x4, Location: 1},
	}}
}

// Stride is the sum of attribute sizes.
func (l VertexLayout) Stride() uint64 {
	var stride uint64
	for _, a := range l.Attributes {
		stride += a.Format.Size()
	}
	return stride
}

// Validate checks that attributes are packed inside the stride without
// overlap and that locations are unique.
func (l VertexLayout) Validate() error {
	if len(l.Attributes) == 0 {
		return fmt.Errorf("%w: vertex layout has no attributes", ErrBindingMismatch)
	}
	stride := l.Stride()
	seen := make(map[uint32]bool, len(l.Attributes))
	var end uint64
	for i, a := range l.Attributes {
		size := a.Format.Size()
		if size == 0 {
			return fmt.Errorf("%w: attribute %d has format %v", ErrBindingMismatch, i, a.Format)
		}
		if a.Offset < end || a.Offset+size > stride {
			return fmt.Errorf("%w: attribute %d at offset %d overlaps or exceeds stride %d",
				ErrBindingMismatch, i, a.Offset, stride)
		}
		if seen[a.Location] {
			return fmt.Errorf("%w: location %d declared twice", ErrBindingMismatch, a.Location)
		}
		seen[a.Location] = true
		end = a.Offset + size
	}
	return nil
}

// BufferLayouts converts l to the single-slot layout wgpu expects.
func (l VertexLayout) BufferLayouts() []gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, len(l.Attributes))
	for i, a := range l.Attributes {
		attrs[i] = gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         a.Offset,
			ShaderLocation: a.Location,
		}
	}
	return []gputypes.VertexBufferLayout{{
		ArrayStride: l.Stride(),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}}
}

// Clone returns a deep copy of l.
func (l VertexLayout) Clone() VertexLayout {
	return VertexLayout{Attributes: append([]VertexAttribute(nil), l.Attributes...)}
}

// formatShape reports how a shader sees a vertex format.
func formatShape(f gputypes.VertexFormat) (ScalarKind, int) {
	switch f {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatUint32, gputypes.VertexFormatSint32:
		return scalarOf(f), 1
	case gputypes.VertexFormatFloat32x2, gputypes.VertexFormatUint32x2, gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatUint8x2, gputypes.VertexFormatSint8x2, gputypes.VertexFormatUnorm8x2,
		gputypes.VertexFormatSnorm8x2, gputypes.VertexFormatUint16x2, gputypes.VertexFormatSint16x2,
		gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatSnorm16x2, gputypes.VertexFormatFloat16x2:
		return scalarOf(f), 2
	case gputypes.VertexFormatFloat32x3, gputypes.VertexFormatUint32x3, gputypes.VertexFormatSint32x3:
		return scalarOf(f), 3
	case gputypes.VertexFormatUndefined:
		return ScalarFloat, 0
	default:
		return scalarOf(f), 4
	}
}

func scalarOf(f gputypes.VertexFormat) ScalarKind {
	switch f {
	case gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint8x4,
		gputypes.VertexFormatUint16x2, gputypes.VertexFormatUint16x4,
		gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2,
		gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4:
		return ScalarUint
	case gputypes.VertexFormatSint8x2, gputypes.VertexFormatSint8x4,
		gputypes.VertexFormatSint16x2, gputypes.VertexFormatSint16x4,
		gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4:
		return ScalarSint
	default:
		return ScalarFloat
	}
}
