package triangle

import "errors"

// Startup errors. All of them are terminal.
var (
	// ErrNoAdapter is returned when no adapter compatible with the surface exists.
	ErrNoAdapter = errors.New("triangle: no compatible GPU adapter")

	// ErrDeviceRequest is returned when the adapter rejects the device request.
	ErrDeviceRequest = errors.New("triangle: device request rejected")

	// ErrSurfaceCreate is returned when a surface cannot be created for the window.
	ErrSurfaceCreate = errors.New("triangle: surface creation failed")

	// ErrSurfaceConfig is returned when the surface configuration is rejected.
	ErrSurfaceConfig = errors.New("triangle: surface configuration rejected")

	// ErrShaderCompile is returned when a shader source fails to compile or load.
	ErrShaderCompile = errors.New("triangle: shader compilation failed")

	// ErrBindingMismatch is returned when the vertex shader inputs disagree
	// with the host vertex layout.
	ErrBindingMismatch = errors.New("triangle: vertex binding mismatch")

	// ErrPipelineCreate is returned when the render pipeline cannot be built.
	ErrPipelineCreate = errors.New("triangle: pipeline creation failed")

	// ErrBufferUpload is returned when a geometry buffer cannot be allocated or filled.
	ErrBufferUpload = errors.New("triangle: buffer upload failed")

	// ErrViewBounds is returned by typed views on misaligned ranges or
	// out-of-range writes.
	ErrViewBounds = errors.New("triangle: typed view out of bounds")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("triangle: invalid config")
)

// Per-frame errors. All of them end the frame loop.
var (
	// ErrFrameAcquire is returned when the next surface texture cannot be
	// acquired, for example after the surface was lost or became outdated.
	ErrFrameAcquire = errors.New("triangle: frame acquisition failed")

	// ErrFrameState is returned when a frame operation is invoked out of order.
	ErrFrameState = errors.New("triangle: invalid frame state")

	// ErrSubmit is returned when recording, submission or presentation fails.
	ErrSubmit = errors.New("triangle: frame submission failed")
)
