package skemapath_test

import (
	"testing"

	skemapath "github.com/reoring/skemapath"
	g "github.com/reoring/skemapath/dsl"
)

// TestExtractField_ObjectNavigation walks member keys and returns the field
// node with its wrappers intact.
func TestExtractField_ObjectNavigation(t *testing.T) {
	user := userSchema()

	got, ok := skemapath.ExtractField(user, "name")
	if !ok || got.Kind() != skemapath.KindString {
		t.Fatalf("expected the name field, got %v ok=%v", got, ok)
	}

	got, ok = skemapath.ExtractField(user, "nickname")
	if !ok || got.Kind() != skemapath.KindOptional {
		t.Fatalf("expected wrappers preserved, got kind=%v ok=%v", got.Kind(), ok)
	}

	got, ok = skemapath.ExtractField(user, "profile.bio")
	if !ok || got.Kind() != skemapath.KindOptional {
		t.Fatalf("expected nested optional bio, got %v ok=%v", got, ok)
	}
	if p := skemapath.ResolvePrimitive(got); p.Kind() != skemapath.KindString {
		t.Fatalf("expected string core under bio, got %v", p.Kind())
	}

	if _, ok := skemapath.ExtractField(user, "missing"); ok {
		t.Fatalf("expected absent for unknown key")
	}
	if _, ok := skemapath.ExtractField(user, "profile.missing"); ok {
		t.Fatalf("expected absent for unknown nested key")
	}
	if got, ok := skemapath.ExtractField(user, ""); !ok || got != user {
		t.Fatalf("expected empty path to return the root, got %v ok=%v", got, ok)
	}
}

// TestExtractField_RootResolution requires the root to resolve to an object
// shape before navigation starts.
func TestExtractField_RootResolution(t *testing.T) {
	user := userSchema()

	if got, ok := skemapath.ExtractField(g.Optional(user), "name"); !ok || got.Kind() != skemapath.KindString {
		t.Fatalf("expected wrapped root to resolve, got %v ok=%v", got, ok)
	}
	if got, ok := skemapath.ExtractField(g.Optional(user), ""); !ok || got != user {
		t.Fatalf("expected empty path to land on the resolved root, got %v ok=%v", got, ok)
	}

	if _, ok := skemapath.ExtractField(g.Array(user), "0.name"); ok {
		t.Fatalf("expected array root to be refused")
	}
	if _, ok := skemapath.ExtractField(g.String(), "length"); ok {
		t.Fatalf("expected primitive root to be refused")
	}
	if _, ok := skemapath.ExtractField(g.String(), ""); ok {
		t.Fatalf("expected empty path on a primitive root to be refused")
	}
	if _, ok := skemapath.ExtractField(nil, "name"); ok {
		t.Fatalf("expected nil root to be refused")
	}
}

// TestExtractField_ArraySegments accepts any digit-only index without range
// checking and rejects everything else.
func TestExtractField_ArraySegments(t *testing.T) {
	catalog := g.Object().
		Field("items", g.Array(g.Object().
			Field("label", g.String()).
			MustBuild())).
		MustBuild()

	first, ok := skemapath.ExtractField(catalog, "items.0.label")
	if !ok || first.Kind() != skemapath.KindString {
		t.Fatalf("expected label via index, got %v ok=%v", first, ok)
	}

	// indices are syntactic only; every digit string lands on the same
	// element node
	far, ok := skemapath.ExtractField(catalog, "items.42.label")
	if !ok || far != first {
		t.Fatalf("expected identical element node, got %v ok=%v", far, ok)
	}
	if padded, ok := skemapath.ExtractField(catalog, "items.007.label"); !ok || padded != first {
		t.Fatalf("expected zero-padded index accepted, got %v ok=%v", padded, ok)
	}

	for _, path := range []string{
		"items.x.label",
		"items.-1.label",
		"items.*.label",
		"items..label",
		"items.+3.label",
	} {
		if _, ok := skemapath.ExtractField(catalog, path); ok {
			t.Fatalf("expected %q to be refused", path)
		}
	}
}

// TestExtractField_TupleBounds selects tuple positions and enforces the
// declared length.
func TestExtractField_TupleBounds(t *testing.T) {
	n := g.Object().
		Field("pair", g.Tuple(g.String(), g.Number())).
		MustBuild()

	if got, ok := skemapath.ExtractField(n, "pair.0"); !ok || got.Kind() != skemapath.KindString {
		t.Fatalf("expected first position, got %v ok=%v", got, ok)
	}
	if got, ok := skemapath.ExtractField(n, "pair.1"); !ok || got.Kind() != skemapath.KindNumber {
		t.Fatalf("expected second position, got %v ok=%v", got, ok)
	}
	if _, ok := skemapath.ExtractField(n, "pair.2"); ok {
		t.Fatalf("expected out-of-bounds position to be refused")
	}
	if _, ok := skemapath.ExtractField(n, "pair.x"); ok {
		t.Fatalf("expected non-numeric position to be refused")
	}
}

// TestExtractField_DiscriminatorRoot narrows discriminated unions at the root
// only; mid-path unions are not navigable.
func TestExtractField_DiscriminatorRoot(t *testing.T) {
	circle, _, union := shapeUnion()
	sel := skemapath.FieldOpt{Discriminator: &skemapath.Selector{Key: "type", Value: "circle"}}

	if got, ok := skemapath.ExtractField(union, "radius", sel); !ok || got.Kind() != skemapath.KindNumber {
		t.Fatalf("expected radius on circle variant, got %v ok=%v", got, ok)
	}
	if got, ok := skemapath.ExtractField(union, "", sel); !ok || got != circle {
		t.Fatalf("expected empty path to return the narrowed variant, got %v ok=%v", got, ok)
	}
	if _, ok := skemapath.ExtractField(union, "size", sel); ok {
		t.Fatalf("expected the other variant's member to be absent after narrowing")
	}

	if _, ok := skemapath.ExtractField(union, "radius"); ok {
		t.Fatalf("expected absent without selector")
	}
	if _, ok := skemapath.ExtractField(union, "radius", skemapath.FieldOpt{
		Discriminator: &skemapath.Selector{Key: "type", Value: "oval"},
	}); ok {
		t.Fatalf("expected absent for unmatched selector")
	}

	holder := g.Object().Field("shape", union).MustBuild()
	if got, ok := skemapath.ExtractField(holder, "shape"); !ok || got != union {
		t.Fatalf("expected the union node itself, got %v ok=%v", got, ok)
	}
	if _, ok := skemapath.ExtractField(holder, "shape.radius", sel); ok {
		t.Fatalf("expected mid-path union to stay opaque")
	}
}
