// Package shaderc compiles WGSL shader stages to SPIR-V with naga and
// reflects their vertex inputs.
//
// It serves two callers: cmd/shadergen, which embeds precompiled SPIR-V
// into Go source at build time, and the runtime WGSL path, which uses
// [Reflect] to reject a broken program before it reaches the device.
package shaderc
