//go:build !(js && wasm)

package main

import _ "github.com/gogpu/wgpu/hal/allbackends"

func guard(fn func() error) error { return fn() }
