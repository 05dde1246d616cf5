//go:build !(js && wasm)

package triangle

import "github.com/gogpu/wgpu"

// releaseRange invalidates mr so no slice escapes past Unmap.
func releaseRange(mr *wgpu.MappedRange) { mr.Release() }
