package openapi_test

import (
	"reflect"
	"testing"

	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/openapi"
)

// TestImportYAML decodes a YAML descriptor and imports it like JSON input.
func TestImportYAML(t *testing.T) {
	doc := []byte(`
type: object
properties:
  name:
    type: string
    minLength: 1
  tags:
    type: array
    items:
      type: string
required:
  - name
`)

	n, d, err := openapi.ImportYAML(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}

	got := skemapath.Paths(n)
	want := []string{"name", "tags", "tags.0", "tags.*"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	name, _ := skemapath.ExtractField(n, "name")
	if !skemapath.RequiresInput(name) {
		t.Fatalf("expected required name")
	}
}

// TestImportYAML_Errors covers empty input, non-mapping roots, and decode
// failures.
func TestImportYAML_Errors(t *testing.T) {
	_, _, err := openapi.ImportYAML(nil, openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeParseError {
		t.Fatalf("expected parse_error for empty input, got %v", err)
	}

	_, _, err = openapi.ImportYAML([]byte("- 1\n- 2\n"), openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeInvalidDescriptor {
		t.Fatalf("expected invalid_descriptor for sequence root, got %v", err)
	}

	_, _, err = openapi.ImportYAML([]byte("a: [1, 2"), openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeParseError || iss[0].Cause == nil {
		t.Fatalf("expected parse_error with cause, got %v", err)
	}
}
