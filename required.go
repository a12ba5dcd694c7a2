package skemapath

import "regexp"

// RemoveDefault strips only has-default layers from a node, rebuilding every
// other wrapper layer around the stripped child so optional/nullable
// structure survives. The input node is never mutated; when no default layer
// is found the input is returned as-is.
func RemoveDefault(n Node) Node {
	return removeDefault(n, 0)
}

func removeDefault(n Node, depth int) Node {
	if n == nil || depth > maxResolveDepth {
		return n
	}
	if d, ok := n.(Defaulted); ok {
		return removeDefault(d.Unwrap(), depth+1)
	}
	if w, ok := n.(Wrapper); ok {
		inner := w.Unwrap()
		stripped := removeDefault(inner, depth+1)
		if stripped == inner {
			return n
		}
		return w.Rewrap(stripped)
	}
	return n
}

// RequiresInput reports whether a field still demands non-empty user input
// once its default layers are ignored. A field does not require input when,
// after RemoveDefault, it accepts undefined, null, the empty string, or the
// empty array.
func RequiresInput(n Node) bool {
	if n == nil {
		return false
	}
	stripped := RemoveDefault(n)
	if acceptsAbsent(stripped, 0) {
		return false
	}
	p := ResolvePrimitive(stripped)
	if p == nil {
		return false
	}
	switch p.Kind() {
	case KindString:
		return !acceptsEmptyString(p)
	case KindArray:
		return !acceptsEmptyArray(p)
	}
	return true
}

// acceptsAbsent reports whether the node tolerates a missing or null value:
// an optional/nullable layer anywhere in the wrapper stack, or a pure
// null/undefined union member.
func acceptsAbsent(n Node, depth int) bool {
	if n == nil || depth > maxResolveDepth {
		return false
	}
	switch n.Kind() {
	case KindOptional, KindNullable, KindNull, KindUndefined:
		return true
	}
	if w, ok := n.(Wrapper); ok {
		return acceptsAbsent(w.Unwrap(), depth+1)
	}
	if u, ok := n.(Union); ok {
		for _, m := range u.Members() {
			if m == nil {
				continue
			}
			if k := m.Kind(); k == KindNull || k == KindUndefined {
				return true
			}
		}
	}
	return false
}

func acceptsEmptyString(p Node) bool {
	for _, c := range Checks(p) {
		switch c.Kind {
		case CheckMinLength, CheckLength:
			if c.Length != nil && *c.Length >= 1 {
				return false
			}
		case CheckFormat:
			// email/uuid/url and friends never match the empty string
			return false
		case CheckPattern:
			if re, err := regexp.Compile(c.Pattern); err == nil && !re.MatchString("") {
				return false
			}
		}
	}
	return true
}

func acceptsEmptyArray(p Node) bool {
	for _, c := range Checks(p) {
		if c.Kind == CheckMinItems && c.Length != nil && *c.Length >= 1 {
			return false
		}
	}
	return true
}
