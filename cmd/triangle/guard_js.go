//go:build js && wasm

package main

import "fmt"

// guard turns a panic from an unimplemented browser GPU path into an error
// so the page reports it instead of crashing the runtime.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("browser GPU backend: %v", r)
		}
	}()
	return fn()
}
