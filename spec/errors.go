package spec

import "errors"

var (
	// ErrIncompatibleLocation is returned when a location does not carry the kind tag a specification expects
	ErrIncompatibleLocation = errors.New("incompatible program location")
	// ErrUnsupported is returned for operations a specification kind does not support
	ErrUnsupported = errors.New("unsupported operation")
)
