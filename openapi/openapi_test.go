package openapi_test

import (
	"reflect"
	"strings"
	"testing"

	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/openapi"
)

// TestImport_ObjectMembers imports properties in sorted key order, wrapping
// non-required members as optional.
func TestImport_ObjectMembers(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"age":  {"type": "integer"}
		},
		"required": ["name"]
	}`)

	n, d, err := openapi.Import(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}

	if got := skemapath.Paths(n); !reflect.DeepEqual(got, []string{"age", "name"}) {
		t.Fatalf("expected sorted member paths, got %v", got)
	}

	name, ok := skemapath.ExtractField(n, "name")
	if !ok || !skemapath.RequiresInput(name) {
		t.Fatalf("expected required name, got %v ok=%v", name, ok)
	}
	cs := skemapath.Checks(name)
	if len(cs) != 1 || cs[0].Kind != skemapath.CheckMinLength {
		t.Fatalf("expected min_length carried over, got %+v", cs)
	}

	age, ok := skemapath.ExtractField(n, "age")
	if !ok || age.Kind() != skemapath.KindOptional {
		t.Fatalf("expected optional age, got %v ok=%v", age, ok)
	}
}

// TestImport_DefaultsFillAbsence keeps defaulted members unwrapped so the
// default materializes missing input.
func TestImport_DefaultsFillAbsence(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"properties": {
			"role":  {"type": "string", "default": "user"},
			"count": {"type": "integer", "default": 3}
		}
	}`)

	n, _, err := openapi.Import(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}

	role, ok := skemapath.ExtractField(n, "role")
	if !ok || role.Kind() != skemapath.KindDefault {
		t.Fatalf("expected default wrapper, got %v ok=%v", role, ok)
	}
	got := skemapath.CollectDefaults(n)
	want := map[string]any{"role": "user", "count": float64(3)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestImport_ScalarMappings covers type/format keywords and the constraint
// carryover for scalars.
func TestImport_ScalarMappings(t *testing.T) {
	n, _, err := openapi.Import(map[string]any{"type": "string", "format": "email"}, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	cs := skemapath.Checks(n)
	if len(cs) != 1 || cs[0].Kind != skemapath.CheckFormat || cs[0].Format != "email" {
		t.Fatalf("expected email format, got %+v", cs)
	}

	n, _, _ = openapi.Import(map[string]any{"type": "string", "format": "date-time"}, openapi.Options{})
	if n.Kind() != skemapath.KindTime {
		t.Fatalf("expected time node for date-time, got %v", n.Kind())
	}

	n, _, _ = openapi.Import(map[string]any{"type": "integer", "minimum": 0, "exclusiveMaximum": 10}, openapi.Options{})
	cs = skemapath.Checks(n)
	if len(cs) != 3 {
		t.Fatalf("expected integer, minimum, and exclusive maximum, got %+v", cs)
	}
	if cs[0].Kind != skemapath.CheckInteger {
		t.Fatalf("expected integer first, got %+v", cs[0])
	}
	if cs[1].Kind != skemapath.CheckGreaterThan || !cs[1].Inclusive || *cs[1].Bound != 0 {
		t.Fatalf("expected inclusive minimum, got %+v", cs[1])
	}
	if cs[2].Kind != skemapath.CheckLessThan || cs[2].Inclusive || *cs[2].Bound != 10 {
		t.Fatalf("expected exclusive maximum, got %+v", cs[2])
	}

	n, _, _ = openapi.Import(map[string]any{"type": "string", "nullable": true}, openapi.Options{})
	if n.Kind() != skemapath.KindNullable {
		t.Fatalf("expected nullable wrapper, got %v", n.Kind())
	}

	n, _, _ = openapi.Import(map[string]any{"const": "fixed"}, openapi.Options{})
	if lit, ok := n.(skemapath.Literal); !ok || lit.LiteralValue() != "fixed" {
		t.Fatalf("expected literal, got %v", n)
	}

	n, _, _ = openapi.Import(map[string]any{"enum": []any{"a", "b"}}, openapi.Options{})
	u, ok := n.(skemapath.Union)
	if !ok || len(u.Members()) != 2 {
		t.Fatalf("expected literal union, got %v", n)
	}
}

// TestImport_CollectionForms maps additionalProperties, items, and
// prefixItems onto map, array, and tuple nodes.
func TestImport_CollectionForms(t *testing.T) {
	n, _, err := openapi.Import(map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	}, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if n.Kind() != skemapath.KindMap {
		t.Fatalf("expected map node, got %v", n.Kind())
	}

	n, _, _ = openapi.Import(map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": 1,
		"maxItems": 5,
	}, openapi.Options{})
	if n.Kind() != skemapath.KindArray {
		t.Fatalf("expected array node, got %v", n.Kind())
	}
	cs := skemapath.Checks(n)
	if len(cs) != 2 || cs[0].Kind != skemapath.CheckMinItems || cs[1].Kind != skemapath.CheckMaxItems {
		t.Fatalf("expected item bounds, got %+v", cs)
	}

	n, _, _ = openapi.Import(map[string]any{
		"type": "array",
		"prefixItems": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
	}, openapi.Options{})
	tup, ok := n.(skemapath.Tuple)
	if !ok || len(tup.Items()) != 2 {
		t.Fatalf("expected tuple node, got %v", n)
	}

	// untyped documents are inferred from their shape keywords
	n, _, _ = openapi.Import(map[string]any{
		"properties": map[string]any{"x": map[string]any{"type": "string"}},
	}, openapi.Options{})
	if n.Kind() != skemapath.KindObject {
		t.Fatalf("expected inferred object, got %v", n.Kind())
	}
	n, _, _ = openapi.Import(map[string]any{}, openapi.Options{})
	if n.Kind() != skemapath.KindAny {
		t.Fatalf("expected any for bare document, got %v", n.Kind())
	}
}

// TestImport_DiscriminatedUnion wires oneOf plus discriminator into a tagged
// union that the introspection operators can narrow.
func TestImport_DiscriminatedUnion(t *testing.T) {
	doc := []byte(`{
		"oneOf": [
			{
				"type": "object",
				"properties": {"type": {"const": "circle"}, "radius": {"type": "number"}},
				"required": ["type", "radius"]
			},
			{
				"type": "object",
				"properties": {"type": {"const": "square"}, "size": {"type": "number"}},
				"required": ["type", "size"]
			}
		],
		"discriminator": {"propertyName": "type"}
	}`)

	n, _, err := openapi.Import(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}

	if _, ok := skemapath.ExtractVariant(n, "type", "circle"); !ok {
		t.Fatalf("expected circle variant to narrow")
	}
	got := skemapath.ValidPaths(n, skemapath.ValidPathsOpt{
		Discriminator: &skemapath.Selector{Key: "type", Value: "circle"},
	})
	if !reflect.DeepEqual(got, []string{"radius", "type"}) {
		t.Fatalf("expected narrowed paths, got %v", got)
	}

	// a variant missing the selector key fails the import
	bad := []byte(`{
		"oneOf": [
			{"type": "object", "properties": {"type": {"const": "a"}}, "required": ["type"]},
			{"type": "object", "properties": {"name": {"type": "string"}}, "required": ["name"]}
		],
		"discriminator": {"propertyName": "type"}
	}`)
	_, _, err = openapi.Import(bad, openapi.Options{})
	if err == nil {
		t.Fatalf("expected discriminator validation to fail")
	}
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeDiscriminatorMissing {
		t.Fatalf("expected discriminator_missing, got %v", err)
	}
}

// TestImport_SharedRef resolves repeated $ref targets to one node.
func TestImport_SharedRef(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"Addr": {"type": "object", "properties": {"city": {"type": "string"}}, "required": ["city"]}
		},
		"type": "object",
		"properties": {
			"home": {"$ref": "#/$defs/Addr"},
			"work": {"$ref": "#/$defs/Addr"}
		},
		"required": ["home", "work"]
	}`)

	n, _, err := openapi.Import(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	home, _ := skemapath.ExtractField(n, "home")
	work, _ := skemapath.ExtractField(n, "work")
	if home == nil || home != work {
		t.Fatalf("expected shared definition node, got %v vs %v", home, work)
	}
}

// TestImport_SelfReferentialRef keeps node identity stable across the cycle
// so traversal terminates after one self-nesting level.
func TestImport_SelfReferentialRef(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"Category": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"children": {"type": "array", "items": {"$ref": "#/$defs/Category"}}
				},
				"required": ["name", "children"]
			}
		},
		"$ref": "#/$defs/Category"
	}`)

	root, _, err := openapi.Import(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}

	paths := skemapath.Paths(root)
	found := false
	for _, p := range paths {
		if p == "children.0.name" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected one nested level, got %v", paths)
	}

	// every emitted path must resolve once indices are concrete
	for _, p := range paths {
		runtime := p
		for strings.Contains(runtime, skemapath.AnyIndex) {
			runtime = skemapath.WithIndex(runtime, 0)
		}
		if _, ok := skemapath.ExtractField(root, runtime); !ok {
			t.Fatalf("path %q (as %q) did not resolve", p, runtime)
		}
	}

	// the lazy reference resolves back to the root definition
	child, ok := skemapath.ExtractField(root, "children.0")
	if !ok || skemapath.ResolvePrimitive(child) != root {
		t.Fatalf("expected cycle to close on the root node")
	}
}

// TestImport_UnknownType fails strict imports and degrades to any with a
// warning when tolerated.
func TestImport_UnknownType(t *testing.T) {
	doc := map[string]any{"type": "file"}

	_, _, err := openapi.Import(doc, openapi.Options{})
	if err == nil {
		t.Fatalf("expected unknown type to fail")
	}
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeUnsupportedType {
		t.Fatalf("expected unsupported_type, got %v", err)
	}

	n, d, err := openapi.Import(doc, openapi.Options{TolerateUnknown: true})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if n.Kind() != skemapath.KindAny {
		t.Fatalf("expected any fallback, got %v", n.Kind())
	}
	if !d.HasWarnings() || !strings.Contains(d.Warnings()[0], "unknown type") {
		t.Fatalf("expected a warning, got %v", d.Warnings())
	}
}

// TestImport_BadInput reports structured issues for undecodable documents and
// unresolvable references.
func TestImport_BadInput(t *testing.T) {
	_, _, err := openapi.Import(nil, openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeInvalidDescriptor {
		t.Fatalf("expected invalid_descriptor for nil, got %v", err)
	}

	_, _, err = openapi.Import([]byte(`{not json`), openapi.Options{})
	iss, ok := skemapath.AsIssues(err)
	if !ok || iss[0].Code != skemapath.CodeParseError || iss[0].Cause == nil {
		t.Fatalf("expected parse_error with cause, got %v", err)
	}

	_, _, err = openapi.Import(map[string]any{"$ref": "#/$defs/Missing"}, openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || iss[0].Code != skemapath.CodeInvalidDescriptor || !strings.Contains(iss[0].Hint, "unresolved") {
		t.Fatalf("expected unresolved ref issue, got %v", err)
	}

	_, _, err = openapi.Import(map[string]any{"$ref": "https://example.com/schema.json"}, openapi.Options{})
	if iss, ok := skemapath.AsIssues(err); !ok || !strings.Contains(iss[0].Hint, "unsupported $ref") {
		t.Fatalf("expected unsupported ref issue, got %v", err)
	}
}

// TestImport_AnnotationFromDoc copies title and description onto the node.
func TestImport_AnnotationFromDoc(t *testing.T) {
	n, _, err := openapi.Import(map[string]any{
		"type":        "string",
		"title":       "Name",
		"description": "Display name",
	}, openapi.Options{})
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	m := n.(skemapath.Annotated).Meta()
	if m == nil || m.Title != "Name" || m.Description != "Display name" {
		t.Fatalf("expected annotation, got %+v", m)
	}
}
