// Package triangle renders a single colored triangle with WebGPU.
//
// # Overview
//
// The package covers the whole bootstrap of a minimal WebGPU program on top
// of gogpu/wgpu: adapter and device negotiation, surface configuration,
// shader module creation, a write-once vertex buffer, an immutable render
// pipeline, and a per-frame render loop. Windowing is left to a [Window]
// implementation; see internal/platform for GLFW and browser canvas
// windows.
//
// # Quick Start
//
//	win, err := platform.Open(platform.Options{Title: "triangle", Width: 800, Height: 600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := triangle.Run(context.Background(), win, triangle.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Shaders
//
// Two shader paths are supported. [Precompiled] carries SPIR-V words
// produced at build time by cmd/shadergen, one blob per stage. [SourceText]
// carries a WGSL program with vertex_main and fragment_main entry points
// that is compiled when the shader modules are created on the device.
//
// # Frame Loop
//
// [FrameLoop] moves through Idle, FrameAcquired, RecordingPass and
// Submitted once per frame. Acquisition failures (surface lost or
// outdated) are returned as fatal errors; nothing is retried.
package triangle

// Version is the current version of the module.
const Version = "0.1.0"
