// Package schemadefs provides reusable JSON Schema fragments for API schema definitions.
//
// Each fragment describes one property and is meant to be spliced, unchanged, under its
// own key into the "properties" map of a larger schema by an external assembler.
//
// Design policy:
// - Fragments are immutable values; every accessor returns a fresh deep copy.
// - The document model lives under jsonschema/, the CLI under cmd/schemadefs.
// - Renderings are deterministic so they can be compared byte-for-byte.
//
// Typical usage:
//
//	f := schemadefs.ElementIdsSchema()
//	b, err := schemadefs.Render(f, schemadefs.FormatJSONIndent)
//
//	// assemblers that concatenate text
//	member, err := f.Member()
package schemadefs
