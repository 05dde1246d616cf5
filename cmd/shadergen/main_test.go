package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/triangle/internal/shaderc"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "compile error",
			err:  &shaderc.Error{Kind: shaderc.CompileError, File: "a.vert.wgsl", Message: "expected ')'"},
			want: []string{"Shader 'a.vert.wgsl' failed", "warning: Compile Error:--\nexpected ')'--"},
		},
		{
			name: "invalid stage",
			err:  &shaderc.Error{Kind: shaderc.InvalidStage, File: "a.geom.wgsl", Message: "no stage"},
			want: []string{"warning: Invalid Stage: no stage"},
		},
		{
			name: "null result",
			err:  &shaderc.Error{Kind: shaderc.NullResult, File: "a.frag.wgsl", Message: "empty"},
			want: []string{"warning: Null Result Object: empty"},
		},
		{
			name: "plain",
			err:  errors.New("read failed"),
			want: []string{"warning: read failed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report(&buf, tt.err)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestRunExitStatus(t *testing.T) {
	const testdata = "../../internal/shaderc/testdata"
	tests := []struct {
		name       string
		files      []string
		wantStatus int
		wantOutput bool
		wantStderr string
	}{
		{"no files", nil, 1, false, "no shader files"},
		{"broken source", []string{"triangle.vert.wgsl", "broken.vert.wgsl"}, 1, false, "Shader 'broken.vert.wgsl' failed"},
		{"wrong stage", []string{"fragonly.vert.wgsl"}, 1, false, "Invalid Stage"},
		{"valid", []string{"triangle.vert.wgsl", "triangle.frag.wgsl"}, 0, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "spirv_gen.go")
			args := []string{"-o", out, "-pkg", "shaders"}
			for _, f := range tt.files {
				args = append(args, filepath.Join(testdata, f))
			}

			var stderr bytes.Buffer
			if got := run(args, &stderr); got != tt.wantStatus {
				t.Errorf("run() = %d, want %d (stderr %q)", got, tt.wantStatus, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q missing %q", stderr.String(), tt.wantStderr)
			}
			_, err := os.Stat(out)
			if exists := err == nil; exists != tt.wantOutput {
				t.Errorf("output written = %v, want %v", exists, tt.wantOutput)
			}
		})
	}
}
