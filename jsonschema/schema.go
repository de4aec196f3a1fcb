package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Field order is the wire order; keep it stable since renderings are compared byte-for-byte.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// String
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

// Clone returns a deep copy of s. A nil receiver yields nil.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = s.Items.Clone()
	return &c
}
