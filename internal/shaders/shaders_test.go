package shaders

import (
	"reflect"
	"testing"

	"github.com/gogpu/triangle/internal/shaderc"
)

func TestPrecompiledBlobs(t *testing.T) {
	for _, b := range []shaderc.Blob{TriangleVert, TriangleFrag} {
		if err := shaderc.CheckWords(b.Words); err != nil {
			t.Errorf("%s: %v", b.Name, err)
		}
		if b.EntryPoint != "main" {
			t.Errorf("%s: entry point %q, want main", b.Name, b.EntryPoint)
		}
	}
	if TriangleVert.Stage != shaderc.StageVertex || TriangleFrag.Stage != shaderc.StageFragment {
		t.Error("blob stages are swapped")
	}
}

// The embedded vertex blob must expose the same inputs as its source.
func TestPrecompiledInputsMatchSource(t *testing.T) {
	mod, err := shaderc.Reflect("triangle.wgsl", TriangleWGSL)
	if err != nil {
		t.Fatalf("Reflect(TriangleWGSL) = %v", err)
	}
	vs, ok := mod.Find(VertexMain, shaderc.StageVertex)
	if !ok {
		t.Fatalf("%s not found", VertexMain)
	}
	if len(vs.Inputs) != len(TriangleVert.Inputs) {
		t.Fatalf("source inputs %+v, blob inputs %+v", vs.Inputs, TriangleVert.Inputs)
	}
	for i := range vs.Inputs {
		got, want := TriangleVert.Inputs[i], vs.Inputs[i]
		got.Name, want.Name = "", ""
		if !reflect.DeepEqual(got, want) {
			t.Errorf("input %d: blob %+v, source %+v", i, got, want)
		}
	}
	if _, ok := mod.Find(FragmentMain, shaderc.StageFragment); !ok {
		t.Errorf("%s not found", FragmentMain)
	}
}

// spirv_gen.go must be what go generate would write for the stage files.
func TestGeneratedMatchesCompiler(t *testing.T) {
	for _, b := range []shaderc.Blob{TriangleVert, TriangleFrag} {
		t.Run(b.Name, func(t *testing.T) {
			got, err := shaderc.CompileFile(b.Name)
			if err != nil {
				t.Fatalf("CompileFile(%s) = %v", b.Name, err)
			}
			if len(got.Words) != len(b.Words) {
				t.Fatalf("compiler emits %d words, spirv_gen.go holds %d; run go generate",
					len(got.Words), len(b.Words))
			}
			for i := range got.Words {
				if got.Words[i] != b.Words[i] {
					t.Fatalf("word %d: compiler %#08x, spirv_gen.go %#08x; run go generate",
						i, got.Words[i], b.Words[i])
				}
			}
			if got.EntryPoint != b.EntryPoint || got.Stage != b.Stage {
				t.Errorf("compiled %s %s, blob %s %s", got.Stage, got.EntryPoint, b.Stage, b.EntryPoint)
			}
		})
	}
}
