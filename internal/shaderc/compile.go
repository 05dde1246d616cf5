package shaderc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/spirv"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// DefaultEntryPoint is the entry point name used by single-stage files.
const DefaultEntryPoint = "main"

// Blob is one compiled shader stage.
type Blob struct {
	// Name is the source file name, e.g. "triangle.vert.wgsl".
	Name       string
	Stage      Stage
	EntryPoint string
	Words      []uint32
	// Inputs are the @location inputs of a vertex entry point.
	Inputs []Input
}

var (
	errUnknownStage = errors.New("file name does not end in .vert or .frag")
	errNoEntryPoint = errors.New("no entry point for stage")
	errEmptyOutput  = errors.New("compiler returned no words")
	errBadMagic     = errors.New("missing SPIR-V magic number")
	errRagged       = errors.New("byte length is not a multiple of 4")
)

// StageFromFile infers the stage from names like "triangle.vert.wgsl".
func StageFromFile(file string) (Stage, error) {
	base := strings.TrimSuffix(filepath.Base(file), ".wgsl")
	switch filepath.Ext(base) {
	case ".vert":
		return StageVertex, nil
	case ".frag":
		return StageFragment, nil
	}
	return 0, newError(InvalidStage, file, errUnknownStage)
}

// CompileFile reads and compiles one stage file.
func CompileFile(path string) (*Blob, error) {
	src, err := os.ReadFile(path) //nolint:gosec // paths come from go:generate directives
	if err != nil {
		return nil, fmt.Errorf("shaderc: read %s: %w", path, err)
	}
	return CompileStage(filepath.Base(path), string(src))
}

// CompileStage compiles src as the stage named by file. The entry point is
// "main" when present, otherwise the only entry point of that stage.
func CompileStage(file, src string) (blob *Blob, err error) {
	stage, err := StageFromFile(file)
	if err != nil {
		return nil, err
	}

	mod, err := Reflect(file, src)
	if err != nil {
		return nil, err
	}
	ep, err := pickEntryPoint(mod, stage)
	if err != nil {
		return nil, newError(InvalidStage, file, err)
	}

	defer func() {
		if r := recover(); r != nil {
			blob, err = nil, newError(InternalError, file, fmt.Errorf("compiler panic: %v", r))
		}
	}()
	out, err := naga.GenerateSPIRV(mod.ir, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, newError(InternalError, file, err)
	}
	words, err := Words(out)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			se.File = file
		}
		return nil, err
	}

	return &Blob{
		Name:       file,
		Stage:      stage,
		EntryPoint: ep.Name,
		Words:      words,
		Inputs:     ep.Inputs,
	}, nil
}

func pickEntryPoint(mod *Module, stage Stage) (EntryPoint, error) {
	if ep, ok := mod.Find(DefaultEntryPoint, stage); ok {
		return ep, nil
	}
	eps := mod.ByStage(stage)
	switch len(eps) {
	case 0:
		return EntryPoint{}, fmt.Errorf("%w %s", errNoEntryPoint, stage)
	case 1:
		return eps[0], nil
	}
	return EntryPoint{}, fmt.Errorf("%d %s entry points and none named %q", len(eps), stage, DefaultEntryPoint)
}

// Words converts a little-endian SPIR-V byte stream to words and checks
// the magic number.
func Words(b []byte) ([]uint32, error) {
	if len(b) == 0 {
		return nil, newError(NullResult, "", errEmptyOutput)
	}
	if len(b)%4 != 0 {
		return nil, newError(InvalidAssembly, "", fmt.Errorf("%w: %d", errRagged, len(b)))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	if err := CheckWords(words); err != nil {
		return nil, err
	}
	return words, nil
}

// CheckWords validates the SPIR-V header of an already decoded module.
func CheckWords(words []uint32) error {
	if len(words) == 0 {
		return newError(NullResult, "", errEmptyOutput)
	}
	if words[0] != SPIRVMagic {
		return newError(InvalidAssembly, "", fmt.Errorf("%w: got %#08x", errBadMagic, words[0]))
	}
	// Header is five words: magic, version, generator, bound, schema.
	if len(words) < 5 {
		return newError(InvalidAssembly, "", fmt.Errorf("truncated header: %d words", len(words)))
	}
	return nil
}

// Identifier maps a shader file name to an exported Go identifier:
// "triangle.vert.wgsl" becomes "TriangleVert".
func Identifier(file string) string {
	base := strings.TrimSuffix(filepath.Base(file), ".wgsl")
	parts := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	id := sb.String()
	if id == "" || unicode.IsDigit([]rune(id)[0]) {
		id = "Shader" + id
	}
	return id
}
