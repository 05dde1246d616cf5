package shaderc

import "fmt"

// Kind classifies a compilation failure.
type Kind uint8

const (
	// CompileError is a parse or lowering failure in the source text.
	CompileError Kind = iota
	// InternalError is a compiler crash or a SPIR-V emission failure.
	InternalError
	// InvalidStage means the requested stage has no matching entry point,
	// or the file name does not name a known stage.
	InvalidStage
	// InvalidAssembly means the module failed validation or the emitted
	// binary is not a well-formed SPIR-V word stream.
	InvalidAssembly
	// NullResult means the compiler produced no output.
	NullResult
)

// String returns the label used in build warnings.
func (k Kind) String() string {
	switch k {
	case CompileError:
		return "Compile Error"
	case InternalError:
		return "Internal Error"
	case InvalidStage:
		return "Invalid Stage"
	case InvalidAssembly:
		return "Invalid Assembly"
	case NullResult:
		return "Null Result Object"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Error is a compilation failure for one shader file.
type Error struct {
	Kind    Kind
	File    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("shaderc: %s: %s: %s", e.File, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, file string, err error) *Error {
	return &Error{Kind: kind, File: file, Message: err.Error(), Err: err}
}
