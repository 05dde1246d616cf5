package triangle

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func triangleInputs() []VertexInput {
	return []VertexInput{
		{Location: 0, Name: "pos", Kind: ScalarFloat, Components: 4},
		{Location: 1, Name: "vcolor", Kind: ScalarFloat, Components: 4},
	}
}

func TestCheckBindings(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []VertexInput
		layout  VertexLayout
		wantErr bool
	}{
		{"match", triangleInputs(), TriangleLayout(), false},
		{"no reflection", nil, TriangleLayout(), false},
		{
			name:    "missing location",
			inputs:  append(triangleInputs(), VertexInput{Location: 2, Name: "uv", Kind: ScalarFloat, Components: 2}),
			layout:  TriangleLayout(),
			wantErr: true,
		},
		{
			name:    "component count",
			inputs:  triangleInputs(),
			layout:  VertexLayout{Attributes: []VertexAttribute{
				{Offset: 0, Format: gputypes.VertexFormatFloat32x3, Location: 0},
				{Offset: 12, Format: gputypes.VertexFormatFloat32x4, Location: 1},
			}},
			wantErr: true,
		},
		{
			name:    "scalar kind",
			inputs:  triangleInputs(),
			layout:  VertexLayout{Attributes: []VertexAttribute{
				{Offset: 0, Format: gputypes.VertexFormatFloat32x4, Location: 0},
				{Offset: 16, Format: gputypes.VertexFormatUint32x4, Location: 1},
			}},
			wantErr: true,
		},
		{"empty layout", triangleInputs(), VertexLayout{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBindings(tt.inputs, tt.layout)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckBindings() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBindingMismatch) {
				t.Errorf("error %v is not ErrBindingMismatch", err)
			}
		})
	}
}

func TestCheckBindingsExtraAttribute(t *testing.T) {
	// Attributes the shader never reads are allowed.
	inputs := triangleInputs()[:1]
	if err := CheckBindings(inputs, TriangleLayout()); err != nil {
		t.Errorf("CheckBindings() = %v, want nil", err)
	}
}

func TestPrimitiveState(t *testing.T) {
	ps, err := primitiveState(TopologyList)
	if err != nil {
		t.Fatal(err)
	}
	if ps.Topology != gputypes.PrimitiveTopologyTriangleList || ps.StripIndexFormat != nil {
		t.Errorf("list primitive = %+v", ps)
	}
	if ps.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want none", ps.CullMode)
	}

	ps, err = primitiveState(TopologyStrip)
	if err != nil {
		t.Fatal(err)
	}
	if ps.Topology != gputypes.PrimitiveTopologyTriangleStrip {
		t.Errorf("strip topology = %v", ps.Topology)
	}
	if ps.StripIndexFormat == nil || *ps.StripIndexFormat != gputypes.IndexFormatUint16 {
		t.Errorf("strip index format = %v, want uint16", ps.StripIndexFormat)
	}

	if _, err := primitiveState("fan"); !errors.Is(err, ErrPipelineCreate) {
		t.Errorf("primitiveState(fan) = %v, want ErrPipelineCreate", err)
	}
}

func TestNewPipelineRejectsMismatch(t *testing.T) {
	vs := &ShaderModule{Name: "vs", Stage: StageVertex, EntryPoint: "main", Inputs: triangleInputs()}
	fs := &ShaderModule{Name: "fs", Stage: StageFragment, EntryPoint: "main"}
	layout := VertexLayout{Attributes: []VertexAttribute{
		{Offset: 0, Format: gputypes.VertexFormatFloat32x4, Location: 0},
	}}

	// The binding check runs before any device call.
	_, err := NewPipeline(nil, PipelineDesc{
		Vertex: vs, Fragment: fs, Layout: layout,
		Topology: TopologyList, Format: gputypes.TextureFormatBGRA8Unorm,
	})
	if !errors.Is(err, ErrPipelineCreate) || !errors.Is(err, ErrBindingMismatch) {
		t.Errorf("NewPipeline() = %v, want ErrPipelineCreate wrapping ErrBindingMismatch", err)
	}

	_, err = NewPipeline(nil, PipelineDesc{Vertex: vs, Layout: TriangleLayout()})
	if !errors.Is(err, ErrPipelineCreate) {
		t.Errorf("NewPipeline(no fragment) = %v, want ErrPipelineCreate", err)
	}
}

func TestPipelineReleaseNil(t *testing.T) {
	var p *Pipeline
	p.Release()
	(&Pipeline{}).Release()
}
