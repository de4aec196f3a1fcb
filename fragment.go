package schemadefs

import (
	"github.com/goccy/go-json"

	js "github.com/reoring/schemadefs/jsonschema"
)

// Fragment is a named JSON Schema sub-document describing one property.
type Fragment struct {
	Name   string
	Schema *js.Schema
}

// Clone returns a deep copy of f.
func (f Fragment) Clone() Fragment {
	return Fragment{Name: f.Name, Schema: f.Schema.Clone()}
}

// Member renders f as a JSON object member (`"Name":{...}`), the form expected by
// assemblers that splice fragments textually into an enclosing object.
func (f Fragment) Member() (string, error) {
	b, err := f.appendMember(nil)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON renders f as a single-key wrapper object.
func (f Fragment) MarshalJSON() ([]byte, error) {
	b := []byte{'{'}
	b, err := f.appendMember(b)
	if err != nil {
		return nil, err
	}
	return append(b, '}'), nil
}

// MarshalYAML renders f as a single-key mapping.
func (f Fragment) MarshalYAML() (any, error) {
	return map[string]*js.Schema{f.Name: f.Schema}, nil
}

func (f Fragment) appendMember(dst []byte) ([]byte, error) {
	key, err := json.Marshal(f.Name)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(f.Schema)
	if err != nil {
		return nil, err
	}
	dst = append(dst, key...)
	dst = append(dst, ':')
	return append(dst, body...), nil
}
