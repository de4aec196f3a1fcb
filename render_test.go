package schemadefs_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/reoring/schemadefs"
	js "github.com/reoring/schemadefs/jsonschema"
)

const elementIdsIndented = `{
  "ElementIds": {
    "type": "array",
    "description": "Container for element Ids.",
    "items": {
      "type": "string",
      "description": "A Globally Unique Identifier (or Universally Unique Identifier) in its string representation as defined in RFC 4122.",
      "format": "uuid",
      "pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
    }
  }
}`

func TestRender_JSONIndentSnapshot(t *testing.T) {
	got, err := schemadefs.Render(schemadefs.ElementIdsSchema(), schemadefs.FormatJSONIndent)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(got) != elementIdsIndented {
		t.Fatalf("snapshot mismatch\n got=%s\nwant=%s", got, elementIdsIndented)
	}
}

func TestRender_CompactAndMemberAgree(t *testing.T) {
	f := schemadefs.ElementIdsSchema()
	compact, err := schemadefs.Render(f, schemadefs.FormatJSON)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	member, err := schemadefs.Render(f, schemadefs.FormatMember)
	if err != nil {
		t.Fatalf("render member: %v", err)
	}
	want := append(append([]byte{'{'}, member...), '}')
	if !bytes.Equal(compact, want) {
		t.Fatalf("compact and member disagree\n compact=%s\n  member=%s", compact, member)
	}
}

func TestRender_YAMLRoundTrip(t *testing.T) {
	f := schemadefs.ElementIdsSchema()
	out, err := schemadefs.Render(f, schemadefs.FormatYAML)
	if err != nil {
		t.Fatalf("render yaml: %v", err)
	}
	if bytes.HasSuffix(out, []byte("\n")) {
		t.Fatalf("yaml rendering must not end with a newline")
	}
	var got map[string]*js.Schema
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("yaml decode: %v\n%s", err, out)
	}
	want := map[string]*js.Schema{f.Name: f.Schema}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("yaml round trip mismatch\n got=%+v\nwant=%+v", got[f.Name], f.Schema)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]schemadefs.Format{
		"json":        schemadefs.FormatJSON,
		"json-indent": schemadefs.FormatJSONIndent,
		"pretty":      schemadefs.FormatJSONIndent,
		"member":      schemadefs.FormatMember,
		"yaml":        schemadefs.FormatYAML,
	}
	for in, want := range cases {
		got, err := schemadefs.ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := schemadefs.ParseFormat("JSON"); !errors.Is(err, schemadefs.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := schemadefs.Render(schemadefs.ElementIdsSchema(), schemadefs.Format(42))
	if !errors.Is(err, schemadefs.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if s := schemadefs.Format(42).String(); s != "Format(42)" {
		t.Fatalf("unexpected String(): %s", s)
	}
}
