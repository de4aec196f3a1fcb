package schemadefs

import "errors"

var (
	// ErrUnknownDefinition is returned by Lookup for names with no registered fragment.
	ErrUnknownDefinition = errors.New("schemadefs: unknown definition")
	// ErrUnknownFormat is returned for rendering formats that are not supported.
	ErrUnknownFormat = errors.New("schemadefs: unknown format")
)
