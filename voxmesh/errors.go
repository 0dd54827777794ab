package voxmesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReader means the buffer was too small to even start reading.
	ErrInvalidReader = errors.New("voxmesh: buffer too small to read a mesh")
	// ErrInvalidMagic means the buffer does not start with the mesh magic.
	ErrInvalidMagic = errors.New("voxmesh: invalid mesh magic")
	// ErrEndOfInput means the buffer was truncated somewhere after the
	// header. Decoding never recovers partial data.
	ErrEndOfInput = errors.New("voxmesh: unexpected end of input")
)

// InvalidVersionError reports a version tag this library does not decode.
// No backward-compatible decoding is attempted.
type InvalidVersionError struct {
	LibVersion  [4]byte
	FileVersion [4]byte
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("voxmesh: unsupported mesh version %v (library supports %v)",
		e.FileVersion, e.LibVersion)
}
