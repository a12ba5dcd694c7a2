package skemapath_test

import (
	"testing"
	"time"

	skemapath "github.com/reoring/skemapath"
	g "github.com/reoring/skemapath/dsl"
	"github.com/reoring/skemapath/i18n"
)

// TestChecks_DeclarationOrder returns string constraints as normalized
// records in the order they were declared.
func TestChecks_DeclarationOrder(t *testing.T) {
	n := g.String().Min(2).Max(5).Pattern("^[a-z]+$").Email()

	got := skemapath.Checks(n)
	if len(got) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(got))
	}
	if got[0].Kind != skemapath.CheckMinLength || got[0].Length == nil || *got[0].Length != 2 {
		t.Fatalf("expected min_length 2 first, got %+v", got[0])
	}
	if got[1].Kind != skemapath.CheckMaxLength || *got[1].Length != 5 {
		t.Fatalf("expected max_length 5, got %+v", got[1])
	}
	if got[2].Kind != skemapath.CheckPattern || got[2].Pattern != "^[a-z]+$" {
		t.Fatalf("expected pattern record, got %+v", got[2])
	}
	if got[3].Kind != skemapath.CheckFormat || got[3].Format != skemapath.FormatEmail {
		t.Fatalf("expected email format record, got %+v", got[3])
	}
}

// TestChecks_NumericBounds distinguishes inclusive from exclusive bounds and
// carries the integer marker.
func TestChecks_NumericBounds(t *testing.T) {
	n := g.Number().Gte(0).Lt(100).MultipleOf(5).Int()

	got := skemapath.Checks(n)
	if len(got) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(got))
	}
	if got[0].Kind != skemapath.CheckGreaterThan || *got[0].Bound != 0 || !got[0].Inclusive {
		t.Fatalf("expected inclusive lower bound, got %+v", got[0])
	}
	if got[1].Kind != skemapath.CheckLessThan || *got[1].Bound != 100 || got[1].Inclusive {
		t.Fatalf("expected exclusive upper bound, got %+v", got[1])
	}
	if got[2].Kind != skemapath.CheckMultipleOf || *got[2].Bound != 5 {
		t.Fatalf("expected multiple_of 5, got %+v", got[2])
	}
	if got[3].Kind != skemapath.CheckInteger {
		t.Fatalf("expected integer marker, got %+v", got[3])
	}

	got = skemapath.Checks(g.Integer())
	if len(got) != 1 || got[0].Kind != skemapath.CheckInteger {
		t.Fatalf("expected integer constructor to carry the marker, got %+v", got)
	}
}

// TestChecks_ResolvesThroughWrappers reads constraints off the primitive core
// under optional/default layers.
func TestChecks_ResolvesThroughWrappers(t *testing.T) {
	n := g.Optional(g.Default(g.Number().Gt(0), 1))

	got := skemapath.Checks(n)
	if len(got) != 1 || got[0].Kind != skemapath.CheckGreaterThan || got[0].Inclusive {
		t.Fatalf("expected one exclusive bound through wrappers, got %+v", got)
	}
}

// TestChecks_TimeAndArray covers date bounds and item-count constraints.
func TestChecks_TimeAndArray(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tn := g.Time().After(t0)

	got := skemapath.Checks(tn)
	if len(got) != 1 || got[0].Kind != skemapath.CheckAfter || got[0].Time == nil || !got[0].Time.Equal(t0) {
		t.Fatalf("expected after bound, got %+v", got)
	}

	got = skemapath.Checks(g.Array(g.String()).Min(1).Max(10))
	if len(got) != 2 {
		t.Fatalf("expected 2 item checks, got %d", len(got))
	}
	if got[0].Kind != skemapath.CheckMinItems || *got[0].Length != 1 {
		t.Fatalf("expected min_items 1, got %+v", got[0])
	}
	if got[1].Kind != skemapath.CheckMaxItems || *got[1].Length != 10 {
		t.Fatalf("expected max_items 10, got %+v", got[1])
	}
}

// TestChecks_UnconstrainedKinds yields nothing for kinds that carry no
// constraint records.
func TestChecks_UnconstrainedKinds(t *testing.T) {
	for _, n := range []skemapath.Node{
		g.Bool(),
		g.Object().MustBuild(),
		g.String(),
	} {
		if got := skemapath.Checks(n); len(got) != 0 {
			t.Fatalf("expected no checks for %v, got %+v", n.Kind(), got)
		}
	}
	if got := skemapath.Checks(nil); got != nil {
		t.Fatalf("expected nil for nil node, got %+v", got)
	}
}

// TestCheckDescribe renders constraint records as human-readable messages in
// the active language.
func TestCheckDescribe(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		node skemapath.Node
		want string
	}{
		{g.String().Min(3), "must be at least 3 characters"},
		{g.String().Pattern("^a+$"), "must match pattern ^a+$"},
		{g.String().Email(), "must be a valid email"},
		{g.Number().Gte(0), "must be at least 0"},
		{g.Number().Lt(9.5), "must be less than 9.5"},
		{g.Integer(), "must be an integer"},
		{g.Time().After(t0), "must be after 2024-03-01T00:00:00Z"},
	}
	for _, tc := range cases {
		cs := skemapath.Checks(tc.node)
		if len(cs) != 1 {
			t.Fatalf("expected one check, got %+v", cs)
		}
		if got := cs[0].Describe(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}

	i18n.SetLanguage("ja")
	got := skemapath.Checks(g.String().Min(3))[0].Describe()
	i18n.SetLanguage("en")
	if got != "3文字以上で入力してください" {
		t.Fatalf("expected japanese description, got %q", got)
	}
}
