package schemadefs

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects a rendering of a Fragment.
type Format int

const (
	FormatJSON       Format = iota // Compact wrapper object.
	FormatJSONIndent               // Wrapper object indented by two spaces.
	FormatMember                   // Bare object member text without braces.
	FormatYAML                     // Single-key YAML mapping.
)

var formatNames = map[Format]string{
	FormatJSON:       "json",
	FormatJSONIndent: "json-indent",
	FormatMember:     "member",
	FormatYAML:       "yaml",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "json-indent", "pretty":
		return FormatJSONIndent, nil
	case "member":
		return FormatMember, nil
	case "yaml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render serializes f in the given format. Output carries no trailing newline.
func Render(f Fragment, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.Marshal(f)
	case FormatJSONIndent:
		raw, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, fmt.Errorf("schemadefs: indent %s: %w", f.Name, err)
		}
		return buf.Bytes(), nil
	case FormatMember:
		m, err := f.Member()
		if err != nil {
			return nil, err
		}
		return []byte(m), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("schemadefs: yaml %s: %w", f.Name, err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}
