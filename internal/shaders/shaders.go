// Package shaders holds the triangle shader programs.
//
// The stage files triangle.vert.wgsl and triangle.frag.wgsl are compiled to
// SPIR-V at build time by cmd/shadergen into spirv_gen.go. triangle.wgsl
// is the single-file program compiled when the device is created.
package shaders

import _ "embed"

//go:generate go run ../../cmd/shadergen -o spirv_gen.go -pkg shaders triangle.vert.wgsl triangle.frag.wgsl

// TriangleWGSL is the runtime-compiled program. Entry points are
// vertex_main and fragment_main.
//
//go:embed triangle.wgsl
var TriangleWGSL string

// Entry points of TriangleWGSL.
const (
	VertexMain   = "vertex_main"
	FragmentMain = "fragment_main"
)
