package shaderc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", s)
	}
}

// ScalarKind is the numeric class of a shader input.
type ScalarKind uint8

const (
	ScalarFloat ScalarKind = iota
	ScalarSint
	ScalarUint
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "f32"
	case ScalarSint:
		return "i32"
	case ScalarUint:
		return "u32"
	default:
		return fmt.Sprintf("ScalarKind(%d)", k)
	}
}

// Input is one @location input of a vertex entry point.
type Input struct {
	Location   uint32
	Name       string
	Kind       ScalarKind
	Components int
}

// EntryPoint is a reflected vertex or fragment entry point.
type EntryPoint struct {
	Name   string
	Stage  Stage
	Inputs []Input
}

// Module is the reflected interface of a WGSL program.
type Module struct {
	EntryPoints []EntryPoint
	ir          *ir.Module
}

// Find returns the entry point with the given name and stage.
func (m *Module) Find(name string, stage Stage) (EntryPoint, bool) {
	for _, ep := range m.EntryPoints {
		if ep.Name == name && ep.Stage == stage {
			return ep, true
		}
	}
	return EntryPoint{}, false
}

// ByStage returns the entry points of one stage in declaration order.
func (m *Module) ByStage(stage Stage) []EntryPoint {
	var out []EntryPoint
	for _, ep := range m.EntryPoints {
		if ep.Stage == stage {
			out = append(out, ep)
		}
	}
	return out
}

// Reflect parses, lowers and validates src, then reports its vertex and
// fragment entry points. Compute and mesh entry points are ignored.
func Reflect(file, src string) (mod *Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			mod, err = nil, newError(InternalError, file, fmt.Errorf("compiler panic: %v", r))
		}
	}()

	ast, err := naga.Parse(src)
	if err != nil {
		return nil, newError(CompileError, file, err)
	}
	m, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, newError(CompileError, file, err)
	}
	verrs, err := naga.Validate(m)
	if err != nil {
		return nil, newError(InvalidAssembly, file, err)
	}
	if len(verrs) > 0 {
		return nil, newError(InvalidAssembly, file, &verrs[0])
	}

	mod = &Module{ir: m}
	for _, ep := range m.EntryPoints {
		var stage Stage
		switch ep.Stage {
		case ir.StageVertex:
			stage = StageVertex
		case ir.StageFragment:
			stage = StageFragment
		default:
			continue
		}
		out := EntryPoint{Name: ep.Name, Stage: stage}
		if stage == StageVertex {
			out.Inputs, err = vertexInputs(m, ep.Function.Arguments)
			if err != nil {
				return nil, newError(InvalidAssembly, file, fmt.Errorf("entry point %s: %w", ep.Name, err))
			}
		}
		mod.EntryPoints = append(mod.EntryPoints, out)
	}
	return mod, nil
}

var errUnsupportedInput = errors.New("unsupported vertex input type")

func vertexInputs(m *ir.Module, args []ir.FunctionArgument) ([]Input, error) {
	var inputs []Input
	add := func(name string, th ir.TypeHandle, b *ir.Binding) error {
		loc, ok := location(b)
		if !ok {
			return nil
		}
		kind, n, ok := shape(m, th)
		if !ok {
			return fmt.Errorf("%w: %s at location %d", errUnsupportedInput, name, loc)
		}
		inputs = append(inputs, Input{Location: loc, Name: name, Kind: kind, Components: n})
		return nil
	}

	for _, arg := range args {
		if arg.Binding != nil {
			if err := add(arg.Name, arg.Type, arg.Binding); err != nil {
				return nil, err
			}
			continue
		}
		if int(arg.Type) >= len(m.Types) {
			continue
		}
		st, ok := m.Types[arg.Type].Inner.(ir.StructType)
		if !ok {
			continue
		}
		for _, mem := range st.Members {
			if err := add(mem.Name, mem.Type, mem.Binding); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Location < inputs[j].Location })
	return inputs, nil
}

func location(b *ir.Binding) (uint32, bool) {
	if b == nil {
		return 0, false
	}
	switch lb := (*b).(type) {
	case ir.LocationBinding:
		return lb.Location, true
	case *ir.LocationBinding:
		return lb.Location, true
	}
	return 0, false
}

func shape(m *ir.Module, th ir.TypeHandle) (ScalarKind, int, bool) {
	if int(th) >= len(m.Types) {
		return 0, 0, false
	}
	switch t := m.Types[th].Inner.(type) {
	case ir.ScalarType:
		k, ok := scalarKind(t.Kind)
		return k, 1, ok
	case ir.VectorType:
		k, ok := scalarKind(t.Scalar.Kind)
		return k, int(t.Size), ok
	}
	return 0, 0, false
}

func scalarKind(k ir.ScalarKind) (ScalarKind, bool) {
	switch k {
	case ir.ScalarFloat:
		return ScalarFloat, true
	case ir.ScalarSint:
		return ScalarSint, true
	case ir.ScalarUint:
		return ScalarUint, true
	}
	return 0, false
}
