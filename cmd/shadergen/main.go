// Command shadergen compiles WGSL shader stages to SPIR-V and writes them
// into a Go source file as uint32 arrays named after each file.
//
// Usage:
//
//	shadergen -o spirv_gen.go -pkg shaders triangle.vert.wgsl triangle.frag.wgsl
//
// The stage is taken from the file name (.vert or .frag before .wgsl). Any
// failure is printed as a warning per file and the command exits with
// status 1 without writing the output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/triangle/internal/shaderc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run compiles the files named in args and returns the exit status.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("shadergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "spirv_gen.go", "output Go file")
	pkg := fs.String("pkg", "shaders", "package name of the output file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: shadergen [options] <file.vert.wgsl|file.frag.wgsl>...\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no shader files specified")
		fs.Usage()
		return 1
	}

	if errs := shaderc.WriteFile(*output, *pkg, fs.Args()); len(errs) > 0 {
		for _, err := range errs {
			report(stderr, err)
		}
		return 1
	}
	return 0
}

// report prints err in the warning format of the build.
func report(w io.Writer, err error) {
	var se *shaderc.Error
	if !errors.As(err, &se) {
		fmt.Fprintf(w, "warning: %v\n", err)
		return
	}
	fmt.Fprintf(w, "warning: Shader '%s' failed to compile due to:\n", se.File)
	if se.Kind == shaderc.CompileError {
		fmt.Fprintf(w, "warning: %s:--\n%s--\n", se.Kind, se.Message)
		return
	}
	fmt.Fprintf(w, "warning: %s: %s\n", se.Kind, se.Message)
}
