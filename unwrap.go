package skemapath

// maxResolveDepth bounds wrapper/union peeling so a degenerate lazy cycle
// (a lazy node resolving to itself) cannot recurse without end.
const maxResolveDepth = 32

// CanUnwrap reports whether n is a single-child wrapper layer (optional,
// nullable, has-default, transform, lazy).
func CanUnwrap(n Node) bool {
	_, ok := n.(Wrapper)
	return ok
}

// Unwrap returns the immediate child of a wrapper node. Calling it on a
// non-wrapper node is a caller contract violation and panics; guard with
// CanUnwrap first.
func Unwrap(n Node) Node {
	w, ok := n.(Wrapper)
	if !ok {
		panic("skemapath.Unwrap: node is not a wrapper")
	}
	return w.Unwrap()
}

// UnionOpt controls member filtering in UnwrapUnionFirst.
type UnionOpt struct {
	// KeepNullish keeps members whose kind is exactly null or undefined.
	// By default they are removed before the representative is selected.
	KeepNullish bool
}

// UnwrapUnionFirst returns a union's first member as representative together
// with the member list. Pure null/undefined members are filtered out first
// unless KeepNullish is set; a union left with no members yields (nil, nil).
// Non-union nodes are returned as their own representative in a singleton
// list.
func UnwrapUnionFirst(n Node, opts ...UnionOpt) (Node, []Node) {
	var opt UnionOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	u, ok := n.(Union)
	if !ok {
		if n == nil {
			return nil, nil
		}
		return n, []Node{n}
	}
	members := u.Members()
	if !opt.KeepNullish {
		kept := make([]Node, 0, len(members))
		for _, m := range members {
			if m == nil {
				continue
			}
			if k := m.Kind(); k == KindNull || k == KindUndefined {
				continue
			}
			kept = append(kept, m)
		}
		members = kept
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members[0], members
}

// ResolvePrimitive strips wrapper layers (and representative-selects through
// untagged unions) until a non-wrapper node remains. Arrays, tuples, and maps
// are never unwrapped further; a discriminated union is terminal so that
// variant extraction can still see it. Idempotent: resolving an already
// primitive node is a no-op. Every component in this package resolves through
// this function rather than re-implementing unwrapping.
func ResolvePrimitive(n Node) Node {
	return resolvePrimitive(n, 0)
}

func resolvePrimitive(n Node, depth int) Node {
	if n == nil || depth > maxResolveDepth {
		return n
	}
	switch n.Kind() {
	case KindArray, KindTuple, KindMap:
		return n
	}
	if w, ok := n.(Wrapper); ok {
		inner := w.Unwrap()
		if inner == nil {
			return n
		}
		return resolvePrimitive(inner, depth+1)
	}
	if u, ok := n.(Union); ok {
		if u.Discriminator() != "" {
			return n
		}
		rep, _ := UnwrapUnionFirst(n)
		if rep == nil {
			return n
		}
		return resolvePrimitive(rep, depth+1)
	}
	return n
}
