package triangle

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTriangleLayout(t *testing.T) {
	l := TriangleLayout()
	if got := l.Stride(); got != 32 {
		t.Errorf("Stride() = %d, want 32", got)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if got := uint64(len(TriangleVertices) * 4); got != l.Stride()*TriangleVertexCount {
		t.Errorf("vertex data is %d bytes, want %d", got, l.Stride()*TriangleVertexCount)
	}

	bl := l.BufferLayouts()
	if len(bl) != 1 {
		t.Fatalf("BufferLayouts() len = %d, want 1", len(bl))
	}
	if bl[0].ArrayStride != 32 || bl[0].StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("buffer layout = %+v", bl[0])
	}
	want := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
	}
	for i, a := range bl[0].Attributes {
		if a != want[i] {
			t.Errorf("attribute %d = %+v, want %+v", i, a, want[i])
		}
	}
}

func TestVertexLayoutValidate(t *testing.T) {
	tests := []struct {
		name  string
		attrs []VertexAttribute
	}{
		{"empty", nil},
		{"duplicate location", []VertexAttribute{
			{Offset: 0, Format: gputypes.VertexFormatFloat32x4, Location: 0},
			{Offset: 16, Format: gputypes.VertexFormatFloat32x4, Location: 0},
		}},
		{"overlap", []VertexAttribute{
			{Offset: 0, Format: gputypes.VertexFormatFloat32x4, Location: 0},
			{Offset: 8, Format: gputypes.VertexFormatFloat32x4, Location: 1},
		}},
		{"undefined format", []VertexAttribute{
			{Offset: 0, Format: gputypes.VertexFormatUndefined, Location: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VertexLayout{Attributes: tt.attrs}.Validate()
			if !errors.Is(err, ErrBindingMismatch) {
				t.Errorf("Validate() = %v, want ErrBindingMismatch", err)
			}
		})
	}
}

func TestFormatShape(t *testing.T) {
	tests := []struct {
		f    gputypes.VertexFormat
		kind ScalarKind
		n    int
	}{
		{gputypes.VertexFormatFloat32x4, ScalarFloat, 4},
		{gputypes.VertexFormatFloat32x2, ScalarFloat, 2},
		{gputypes.VertexFormatUnorm8x4, ScalarFloat, 4},
		{gputypes.VertexFormatUint32, ScalarUint, 1},
		{gputypes.VertexFormatSint32x3, ScalarSint, 3},
	}
	for _, tt := range tests {
		kind, n := formatShape(tt.f)
		if kind != tt.kind || n != tt.n {
			t.Errorf("formatShape(%v) = %v, %d; want %v, %d", tt.f, kind, n, tt.kind, tt.n)
		}
	}
}
