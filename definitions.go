package schemadefs

import (
	"fmt"
	"maps"
	"slices"

	js "github.com/reoring/schemadefs/jsonschema"
)

// ElementIdsName is the property key under which the element id list is inserted.
const ElementIdsName = "ElementIds"

// UUIDPattern matches the canonical 8-4-4-4-12 hexadecimal UUID text form (RFC 4122).
const UUIDPattern = "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"

// UUIDFormat is the JSON Schema format name for UUID strings.
const UUIDFormat = "uuid"

const (
	elementIdsDescription = "Container for element Ids."
	uuidDescription       = "A Globally Unique Identifier (or Universally Unique Identifier) in its string representation as defined in RFC 4122."
)

// prototypes are never handed out; accessors return clones.
var elementIds = Fragment{
	Name: ElementIdsName,
	Schema: &js.Schema{
		Type:        "array",
		Description: elementIdsDescription,
		Items: &js.Schema{
			Type:        "string",
			Description: uuidDescription,
			Format:      UUIDFormat,
			Pattern:     UUIDPattern,
		},
	},
}

var definitions = map[string]Fragment{
	ElementIdsName: elementIds,
}

// ElementIdsSchema returns the fragment describing an array of UUID strings.
func ElementIdsSchema() Fragment { return elementIds.Clone() }

// Definitions returns every known fragment sorted by name.
func Definitions() []Fragment {
	names := slices.Sorted(maps.Keys(definitions))
	out := make([]Fragment, 0, len(names))
	for _, n := range names {
		out = append(out, definitions[n].Clone())
	}
	return out
}

// Lookup returns the fragment registered under name. Names are case-sensitive.
func Lookup(name string) (Fragment, error) {
	f, ok := definitions[name]
	if !ok {
		return Fragment{}, fmt.Errorf("%w: %q", ErrUnknownDefinition, name)
	}
	return f.Clone(), nil
}
