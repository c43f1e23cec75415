package graph

import "errors"

var (
	// ErrUnknownTag is returned when an external tag name has no counterpart
	ErrUnknownTag = errors.New("unknown tag")
	// ErrIncorrectAttributeType is returned when an attribute value has an unexpected type
	ErrIncorrectAttributeType = errors.New("incorrect attribute type")
	// ErrLocationNotFound is returned when a location id is not part of the graph
	ErrLocationNotFound = errors.New("location not found")
)
