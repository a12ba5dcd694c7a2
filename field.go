package skemapath

import (
	"strconv"
	"strings"
)

// FieldOpt configures ExtractField.
type FieldOpt struct {
	// Discriminator narrows a discriminated union at the root before
	// navigation starts. Discriminated unions met mid-path are not
	// navigable.
	Discriminator *Selector
}

// ExtractField walks a dot-path through the schema graph and returns the
// node the path designates. The root must resolve to an object, directly
// or through discriminator narrowing; an empty path returns that narrowed
// root itself. Object segments are member keys; array segments must be
// non-negative integer strings, accepted syntactically and never
// range-checked against runtime length; tuple segments select by position
// and are bounds-checked against the declared items. The result keeps its
// wrappers; callers that need the bare kind resolve it with
// ResolvePrimitive.
func ExtractField(n Node, path string, opts ...FieldOpt) (Node, bool) {
	var opt FieldOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	root := ResolvePrimitive(n)
	if root == nil {
		return nil, false
	}
	var cur Node
	if u, ok := root.(Union); ok && u.Discriminator() != "" {
		if opt.Discriminator == nil {
			return nil, false
		}
		m, ok := ExtractVariant(root, opt.Discriminator.Key, opt.Discriminator.Value)
		if !ok {
			return nil, false
		}
		cur = m
	} else if _, ok := root.(Object); ok {
		cur = root
	} else {
		return nil, false
	}
	if path == "" {
		return cur, true
	}

	for _, seg := range strings.Split(path, ".") {
		res := ResolvePrimitive(cur)
		if res == nil {
			return nil, false
		}
		switch c := res.(type) {
		case Object:
			sub, ok := c.Field(seg)
			if !ok {
				return nil, false
			}
			cur = sub
		case Tuple:
			i, ok := parseIndexSegment(seg)
			items := c.Items()
			if !ok || i >= len(items) {
				return nil, false
			}
			cur = items[i]
		case Array:
			if _, ok := parseIndexSegment(seg); !ok {
				return nil, false
			}
			cur = c.Elem()
		default:
			return nil, false
		}
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// parseIndexSegment accepts digit-only segments. AnyIndex and signed or
// non-numeric strings are rejected.
func parseIndexSegment(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
