//go:build js && wasm

package triangle

import "github.com/gogpu/wgpu"

// releaseRange is a no-op: browser mapped ranges have no explicit release.
func releaseRange(*wgpu.MappedRange) {}
