package shaderc

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

const genSource = `// Code generated by shadergen. DO NOT EDIT.

package {{.Package}}

import "github.com/gogpu/triangle/internal/shaderc"
{{range .Blobs}}
// {{ident .Name}}SPIRV is the SPIR-V of {{.Name}}.
var {{ident .Name}}SPIRV = [{{len .Words}}]uint32{ {{range $i, $w := .Words}}{{if $i}}, {{end}}{{if wrap $i}}
	{{end}}{{printf "0x%08x" $w}}{{end}},
}

// {{ident .Name}} describes {{.Name}}.
var {{ident .Name}} = shaderc.Blob{
	Name:       {{printf "%q" .Name}},
	Stage:      shaderc.{{stage .Stage}},
	EntryPoint: {{printf "%q" .EntryPoint}},
	Words:      {{ident .Name}}SPIRV[:],
	Inputs: []shaderc.Input{ {{range .Inputs}}
		{Location: {{.Location}}, Name: {{printf "%q" .Name}}, Kind: shaderc.{{kind .Kind}}, Components: {{.Components}}},{{end}}
	},
}
{{end}}`

var genTemplate = template.Must(template.New("gen").Funcs(genFuncs).Parse(genSource))

var genFuncs = template.FuncMap{
	"ident": Identifier,
	"wrap":  func(i int) bool { return i%6 == 0 },
	"stage": func(s Stage) string {
		if s == StageFragment {
			return "StageFragment"
		}
		return "StageVertex"
	},
	"kind": func(k ScalarKind) string {
		switch k {
		case ScalarSint:
			return "ScalarSint"
		case ScalarUint:
			return "ScalarUint"
		}
		return "ScalarFloat"
	},
}

// Generate renders blobs as a gofmt-ed Go source file in package pkg.
func Generate(pkg string, blobs []*Blob) ([]byte, error) {
	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, struct {
		Package string
		Blobs   []*Blob
	}{pkg, blobs}); err != nil {
		return nil, fmt.Errorf("shaderc: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("shaderc: gofmt: %w", err)
	}
	return src, nil
}

// WriteFile compiles every path and writes the generated source to out.
// All files are compiled before anything is written, so a failure leaves
// no output behind. The returned errors are one per failed file.
func WriteFile(out, pkg string, paths []string) []error {
	var (
		blobs []*Blob
		errs  []error
	)
	for _, p := range paths {
		b, err := CompileFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		blobs = append(blobs, b)
	}
	if len(errs) > 0 {
		return errs
	}

	src, err := Generate(pkg, blobs)
	if err != nil {
		return []error{err}
	}
	tmp := filepath.Join(filepath.Dir(out), "."+filepath.Base(out)+".tmp")
	if err := os.WriteFile(tmp, src, 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return []error{fmt.Errorf("shaderc: write: %w", err)}
	}
	if err := os.Rename(tmp, out); err != nil {
		_ = os.Remove(tmp)
		return []error{fmt.Errorf("shaderc: write: %w", err)}
	}
	return nil
}
