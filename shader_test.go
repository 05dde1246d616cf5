package triangle

import (
	"errors"
	"testing"

	"github.com/gogpu/triangle/internal/shaderc"
	"github.com/gogpu/triangle/internal/shaders"
)

func TestLookupShaderSet(t *testing.T) {
	set, err := LookupShaderSet("")
	if err != nil {
		t.Fatalf("LookupShaderSet(\"\") = %v", err)
	}
	if _, ok := set.Vertex.(Precompiled); !ok {
		t.Errorf("default vertex source = %T, want Precompiled", set.Vertex)
	}

	set, err = LookupShaderSet(ShaderSetSource)
	if err != nil {
		t.Fatalf("LookupShaderSet(source) = %v", err)
	}
	text, ok := set.Vertex.(SourceText)
	if !ok {
		t.Fatalf("source vertex = %T, want SourceText", set.Vertex)
	}
	if text.Code != shaders.TriangleWGSL {
		t.Error("source set does not carry the embedded WGSL")
	}

	if _, err := LookupShaderSet("nope"); !errors.Is(err, ErrShaderCompile) {
		t.Errorf("LookupShaderSet(nope) = %v, want ErrShaderCompile", err)
	}
}

func TestSourceTextEntries(t *testing.T) {
	vs, fs := SourceText{}.entries()
	if vs != shaders.VertexMain || fs != shaders.FragmentMain {
		t.Errorf("entries() = %q, %q", vs, fs)
	}
	vs, fs = SourceText{VertexEntry: "v", FragmentEntry: "f"}.entries()
	if vs != "v" || fs != "f" {
		t.Errorf("entries() = %q, %q, want v, f", vs, fs)
	}
}

// Rejections below happen before the device is touched.
func TestResolvePrecompiledRejects(t *testing.T) {
	good := PrecompiledFromBlob(shaders.TriangleVert)

	tests := []struct {
		name  string
		src   Precompiled
		stage Stage
	}{
		{"wrong stage", good, StageFragment},
		{"empty words", Precompiled{Name: "empty", Stage: StageVertex}, StageVertex},
		{"bad magic", Precompiled{Name: "magic", Stage: StageVertex, Words: []uint32{1, 2, 3, 4, 5}}, StageVertex},
		{"short header", Precompiled{Name: "short", Stage: StageVertex, Words: []uint32{shaderc.SPIRVMagic, 0}}, StageVertex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolvePrecompiled(nil, tt.src, tt.stage)
			if !errors.Is(err, ErrShaderCompile) {
				t.Errorf("resolvePrecompiled() = %v, want ErrShaderCompile", err)
			}
		})
	}
}

func TestResolveOneMissing(t *testing.T) {
	if _, err := resolveOne(nil, nil, StageVertex); !errors.Is(err, ErrShaderCompile) {
		t.Errorf("resolveOne(nil) = %v, want ErrShaderCompile", err)
	}
	bad := SourceText{Name: "bad.wgsl", Code: shaders.TriangleWGSL, VertexEntry: "missing"}
	if _, err := resolveOne(nil, bad, StageVertex); !errors.Is(err, ErrShaderCompile) {
		t.Errorf("resolveOne(missing entry) = %v, want ErrShaderCompile", err)
	}
}

func TestShaderModuleReleaseNil(t *testing.T) {
	var m *ShaderModule
	m.Release()
	(&ShaderModule{shared: true}).Release()
}
