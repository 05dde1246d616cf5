package triangle

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/triangle/internal/shaderc"
	"github.com/gogpu/triangle/internal/shaders"
)

// Stage is a programmable pipeline stage.
type Stage = shaderc.Stage

const (
	StageVertex   = shaderc.StageVertex
	StageFragment = shaderc.StageFragment
)

// VertexInput is one @location input of a vertex shader.
type VertexInput = shaderc.Input

// ShaderSource is where a shader module comes from. It is either
// [Precompiled] or [SourceText].
type ShaderSource interface {
	sourceName() string
}

// Precompiled is a SPIR-V module produced at build time.
type Precompiled struct {
	Name       string
	Stage      Stage
	EntryPoint string
	Words      []uint32
	// Inputs are the reflected vertex inputs; nil skips layout checks.
	Inputs []VertexInput
}

func (p Precompiled) sourceName() string { return p.Name }

// PrecompiledFromBlob adapts a generated blob.
func PrecompiledFromBlob(b shaderc.Blob) Precompiled {
	return Precompiled{
		Name:       b.Name,
		Stage:      b.Stage,
		EntryPoint: b.EntryPoint,
		Words:      b.Words,
		Inputs:     b.Inputs,
	}
}

// SourceText is a WGSL program compiled when the module is created.
type SourceText struct {
	Name string
	Code string
	// VertexEntry and FragmentEntry default to vertex_main and fragment_main.
	VertexEntry   string
	FragmentEntry string
}

func (s SourceText) sourceName() string { return s.Name }

func (s SourceText) entries() (vs, fs string) {
	vs, fs = s.VertexEntry, s.FragmentEntry
	if vs == "" {
		vs = shaders.VertexMain
	}
	if fs == "" {
		fs = shaders.FragmentMain
	}
	return vs, fs
}

// ShaderSet pairs the vertex and fragment sources. A SourceText set uses
// the same program for both stages.
type ShaderSet struct {
	Vertex   ShaderSource
	Fragment ShaderSource
}

// ShaderModule is a compiled module bound to one entry point.
type ShaderModule struct {
	Name       string
	Stage      Stage
	EntryPoint string
	Inputs     []VertexInput

	module *wgpu.ShaderModule
	// shared modules are released by their sibling.
	shared bool
}

// Handle returns the underlying wgpu module.
func (m *ShaderModule) Handle() *wgpu.ShaderModule { return m.module }

// Release frees the module unless it is shared with a sibling stage.
func (m *ShaderModule) Release() {
	if m == nil || m.module == nil || m.shared {
		return
	}
	m.module.Release()
	m.module = nil
}

// shaderRegistry maps variant names to shader sets.
var shaderRegistry = gpucontext.NewRegistry[ShaderSet](
	gpucontext.WithPriority(ShaderSetPrecompiled, ShaderSetSource),
)

func init() {
	RegisterShaderSet(ShaderSetPrecompiled, func() ShaderSet {
		return ShaderSet{
			Vertex:   PrecompiledFromBlob(shaders.TriangleVert),
			Fragment: PrecompiledFromBlob(shaders.TriangleFrag),
		}
	})
	RegisterShaderSet(ShaderSetSource, func() ShaderSet {
		src := SourceText{Name: "triangle.wgsl", Code: shaders.TriangleWGSL}
		return ShaderSet{Vertex: src, Fragment: src}
	})
}

// RegisterShaderSet adds or replaces a named shader set.
func RegisterShaderSet(name string, factory func() ShaderSet) {
	shaderRegistry.Register(name, factory)
}

// LookupShaderSet returns the named set. An empty name picks the
// highest-priority registered set.
func LookupShaderSet(name string) (ShaderSet, error) {
	if name == "" {
		name = shaderRegistry.BestName()
	}
	if !shaderRegistry.Has(name) {
		return ShaderSet{}, fmt.Errorf("%w: no shader set %q (available %v)",
			ErrShaderCompile, name, shaderRegistry.Available())
	}
	return shaderRegistry.Get(name), nil
}

// ResolveShaders creates the vertex and fragment modules of set on device.
func ResolveShaders(device *wgpu.Device, set ShaderSet) (vs, fs *ShaderModule, err error) {
	if text, ok := set.Vertex.(SourceText); ok {
		if ftext, ok := set.Fragment.(SourceText); ok && ftext.Code == text.Code {
			return resolveSourceText(device, text)
		}
	}

	vs, err = resolveOne(device, set.Vertex, StageVertex)
	if err != nil {
		return nil, nil, err
	}
	fs, err = resolveOne(device, set.Fragment, StageFragment)
	if err != nil {
		vs.Release()
		return nil, nil, err
	}
	return vs, fs, nil
}

func resolveOne(device *wgpu.Device, src ShaderSource, stage Stage) (*ShaderModule, error) {
	switch s := src.(type) {
	case Precompiled:
		return resolvePrecompiled(device, s, stage)
	case SourceText:
		vsEntry, fsEntry := s.entries()
		mod, err := reflectSource(s)
		if err != nil {
			return nil, err
		}
		entry := vsEntry
		if stage == StageFragment {
			entry = fsEntry
		}
		ep, ok := mod.Find(entry, stage)
		if !ok {
			return nil, fmt.Errorf("%w: %s: no %s entry point %q", ErrShaderCompile, s.Name, stage, entry)
		}
		h, err := createModule(device, s.Name, &wgpu.ShaderModuleDescriptor{Label: s.Name, WGSL: s.Code})
		if err != nil {
			return nil, err
		}
		return &ShaderModule{Name: s.Name, Stage: stage, EntryPoint: entry, Inputs: ep.Inputs, module: h}, nil
	case nil:
		return nil, fmt.Errorf("%w: missing %s shader", ErrShaderCompile, stage)
	default:
		return nil, fmt.Errorf("%w: unsupported shader source %T", ErrShaderCompile, src)
	}
}

func resolvePrecompiled(device *wgpu.Device, p Precompiled, stage Stage) (*ShaderModule, error) {
	if p.Stage != stage {
		return nil, fmt.Errorf("%w: %s is a %s shader, want %s", ErrShaderCompile, p.Name, p.Stage, stage)
	}
	if err := shaderc.CheckWords(p.Words); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShaderCompile, p.Name, err)
	}
	entry := p.EntryPoint
	if entry == "" {
		entry = shaderc.DefaultEntryPoint
	}
	h, err := createModule(device, p.Name, &wgpu.ShaderModuleDescriptor{Label: p.Name, SPIRV: p.Words})
	if err != nil {
		return nil, err
	}
	Logger().Debug("shader module created", "name", p.Name, "stage", stage.String(), "words", len(p.Words))
	return &ShaderModule{Name: p.Name, Stage: stage, EntryPoint: entry, Inputs: p.Inputs, module: h}, nil
}

func resolveSourceText(device *wgpu.Device, s SourceText) (vs, fs *ShaderModule, err error) {
	mod, err := reflectSource(s)
	if err != nil {
		return nil, nil, err
	}
	vsEntry, fsEntry := s.entries()
	vep, ok := mod.Find(vsEntry, StageVertex)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: no vertex entry point %q", ErrShaderCompile, s.Name, vsEntry)
	}
	if _, ok := mod.Find(fsEntry, StageFragment); !ok {
		return nil, nil, fmt.Errorf("%w: %s: no fragment entry point %q", ErrShaderCompile, s.Name, fsEntry)
	}

	h, err := createModule(device, s.Name, &wgpu.ShaderModuleDescriptor{Label: s.Name, WGSL: s.Code})
	if err != nil {
		return nil, nil, err
	}
	Logger().Debug("shader module created", "name", s.Name, "entries", []string{vsEntry, fsEntry})
	vs = &ShaderModule{Name: s.Name, Stage: StageVertex, EntryPoint: vsEntry, Inputs: vep.Inputs, module: h}
	fs = &ShaderModule{Name: s.Name, Stage: StageFragment, EntryPoint: fsEntry, module: h, shared: true}
	return vs, fs, nil
}

func reflectSource(s SourceText) (*shaderc.Module, error) {
	mod, err := shaderc.Reflect(s.Name, s.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	return mod, nil
}

// createModule creates a module inside a validation error scope so that
// device-side rejections surface as errors.
func createModule(device *wgpu.Device, name string, desc *wgpu.ShaderModuleDescriptor) (*wgpu.ShaderModule, error) {
	device.PushErrorScope(wgpu.ErrorFilterValidation)
	h, err := device.CreateShaderModule(desc)
	gpuErr := device.PopErrorScope()
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrShaderCompile, name, err)
	}
	if gpuErr != nil {
		h.Release()
		return nil, fmt.Errorf("%w: create %s: %w", ErrShaderCompile, name, gpuErr)
	}
	return h, nil
}
