package core

import (
	"errors"
)

var (
	// ErrNonTriangleIndexCount is returned when an index buffer is created
	// with a count that is not a positive multiple of 3.
	ErrNonTriangleIndexCount = errors.New("index count is not a positive multiple of 3")
	// ErrUnsupportedTopology is returned when a native submesh does not
	// carry a triangle list.
	ErrUnsupportedTopology = errors.New("submesh topology is not a triangle list")
	ErrUnknown             = errors.New("unknown")
)
