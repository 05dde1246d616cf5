package triangle

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Float32View is a length-checked little-endian float32 view over a byte
// range, typically a mapped GPU buffer.
type Float32View struct {
	b []byte
}

// NewFloat32View wraps b. len(b) must be a multiple of 4.
func NewFloat32View(b []byte) (Float32View, error) {
	if len(b)%4 != 0 {
		return Float32View{}, fmt.Errorf("%w: %d bytes is not a whole number of float32", ErrViewBounds, len(b))
	}
	return Float32View{b: b}, nil
}

// Len returns the number of elements.
func (v Float32View) Len() int { return len(v.b) / 4 }

// At returns element i.
func (v Float32View) At(i int) (float32, error) {
	if i < 0 || i >= v.Len() {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrViewBounds, i, v.Len())
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(v.b[i*4:])), nil
}

// Set stores x at element i.
func (v Float32View) Set(i int, x float32) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrViewBounds, i, v.Len())
	}
	binary.LittleEndian.PutUint32(v.b[i*4:], math.Float32bits(x))
	return nil
}

// CopyFrom writes src starting at element 0 and returns the count written.
// Nothing is written when src does not fit.
func (v Float32View) CopyFrom(src []float32) (int, error) {
	if len(src) > v.Len() {
		return 0, fmt.Errorf("%w: %d elements into view of %d", ErrViewBounds, len(src), v.Len())
	}
	for i, x := range src {
		binary.LittleEndian.PutUint32(v.b[i*4:], math.Float32bits(x))
	}
	return len(src), nil
}

// Uint16View is a length-checked little-endian uint16 view over a byte range.
type Uint16View struct {
	b []byte
}

// NewUint16View wraps b. len(b) must be even.
func NewUint16View(b []byte) (Uint16View, error) {
	if len(b)%2 != 0 {
		return Uint16View{}, fmt.Errorf("%w: %d bytes is not a whole number of uint16", ErrViewBounds, len(b))
	}
	return Uint16View{b: b}, nil
}

// Len returns the number of elements.
func (v Uint16View) Len() int { return len(v.b) / 2 }

// At returns element i.
func (v Uint16View) At(i int) (uint16, error) {
	if i < 0 || i >= v.Len() {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrViewBounds, i, v.Len())
	}
	return binary.LittleEndian.Uint16(v.b[i*2:]), nil
}

// CopyFrom writes src starting at element 0 and returns the count written.
func (v Uint16View) CopyFrom(src []uint16) (int, error) {
	if len(src) > v.Len() {
		return 0, fmt.Errorf("%w: %d elements into view of %d", ErrViewBounds, len(src), v.Len())
	}
	for i, x := range src {
		binary.LittleEndian.PutUint16(v.b[i*2:], x)
	}
	return len(src), nil
}
