package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// PipelineDesc is everything a Pipeline is built from.
type PipelineDesc struct {
	Vertex   *ShaderModule
	Fragment *ShaderModule
	Layout   VertexLayout
	Topology Topology
	Format   gputypes.TextureFormat
}

// Pipeline is an immutable render pipeline. Changing any constituent
// means building a new Pipeline.
type Pipeline struct {
	pipeline *wgpu.RenderPipeline
	layout   *wgpu.PipelineLayout

	vertexLayout VertexLayout
	topology     Topology
	format       gputypes.TextureFormat
}

// NewPipeline validates desc and creates the render pipeline: no depth or
// stencil, one sample, opaque overwrite of the color target.
func NewPipeline(device *wgpu.Device, desc PipelineDesc) (*Pipeline, error) {
	if desc.Vertex == nil || desc.Fragment == nil {
		return nil, fmt.Errorf("%w: missing shader module", ErrPipelineCreate)
	}
	if err := CheckBindings(desc.Vertex.Inputs, desc.Layout); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPipelineCreate, err)
	}
	primitive, err := primitiveState(desc.Topology)
	if err != nil {
		return nil, err
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{Label: "triangle"})
	if err != nil {
		return nil, fmt.Errorf("%w: pipeline layout: %w", ErrPipelineCreate, err)
	}

	device.PushErrorScope(wgpu.ErrorFilterValidation)
	rp, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "triangle",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     desc.Vertex.Handle(),
			EntryPoint: desc.Vertex.EntryPoint,
			Buffers:    desc.Layout.BufferLayouts(),
		},
		Primitive: primitive,
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     desc.Fragment.Handle(),
			EntryPoint: desc.Fragment.EntryPoint,
			Targets: []gputypes.ColorTargetState{{
				Format:    desc.Format,
				Blend:     nil,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	gpuErr := device.PopErrorScope()
	if err == nil && gpuErr != nil {
		rp.Release()
		err = gpuErr
	}
	if err != nil {
		layout.Release()
		return nil, fmt.Errorf("%w: %w", ErrPipelineCreate, err)
	}

	Logger().Debug("pipeline created",
		"topology", string(desc.Topology),
		"format", desc.Format.String(),
		"stride", desc.Layout.Stride())

	return &Pipeline{
		pipeline:     rp,
		layout:       layout,
		vertexLayout: desc.Layout.Clone(),
		topology:     desc.Topology,
		format:       desc.Format,
	}, nil
}

func primitiveState(t Topology) (gputypes.PrimitiveState, error) {
	ps := gputypes.PrimitiveState{
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	switch t {
	case TopologyList:
		ps.Topology = gputypes.PrimitiveTopologyTriangleList
	case TopologyStrip:
		ps.Topology = gputypes.PrimitiveTopologyTriangleStrip
		f := gputypes.IndexFormatUint16
		ps.StripIndexFormat = &f
	default:
		return ps, fmt.Errorf("%w: unknown topology %q", ErrPipelineCreate, t)
	}
	return ps, nil
}

// CheckBindings reports whether layout feeds every shader input with an
// attribute of the same location, scalar kind and component count.
// A nil input list skips the check.
func CheckBindings(inputs []VertexInput, layout VertexLayout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	for _, in := range inputs {
		attr, ok := layout.attribute(in.Location)
		if !ok {
			return fmt.Errorf("%w: shader input %q at location %d has no vertex attribute",
				ErrBindingMismatch, in.Name, in.Location)
		}
		kind, n := formatShape(attr.Format)
		if kind != in.Kind || n != in.Components {
			return fmt.Errorf("%w: location %d: shader reads %s x%d, layout supplies %v",
				ErrBindingMismatch, in.Location, in.Kind, in.Components, attr.Format)
		}
	}
	return nil
}

func (l VertexLayout) attribute(location uint32) (VertexAttribute, bool) {
	for _, a := range l.Attributes {
		if a.Location == location {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// VertexLayout returns a copy of the layout the pipeline accepts.
func (p *Pipeline) VertexLayout() VertexLayout { return p.vertexLayout.Clone() }

// Topology returns the primitive topology.
func (p *Pipeline) Topology() Topology { return p.topology }

// Format returns the color target format.
func (p *Pipeline) Format() gputypes.TextureFormat { return p.format }

// Indexed reports whether draws go through an index buffer.
func (p *Pipeline) Indexed() bool { return p.topology == TopologyStrip }

// Handle returns the underlying render pipeline.
func (p *Pipeline) Handle() *wgpu.RenderPipeline { return p.pipeline }

// Release frees the pipeline and its layout.
func (p *Pipeline) Release() {
	if p == nil {
		return
	}
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
}
