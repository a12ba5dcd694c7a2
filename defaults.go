package skemapath

// ExtractDefault walks a node through its wrapper layers looking for a
// declared default. Thunk-declared defaults are invoked on every call and
// never cached, so impure thunks produce a fresh value each time. Unions are
// consulted only when nullish stripping leaves exactly one member; with two
// or more concrete members remaining the result is absent (the deterministic
// policy: a default is extractable only when the union degenerates to one
// branch).
func ExtractDefault(n Node) (any, bool) {
	return extractDefault(n, 0)
}

func extractDefault(n Node, depth int) (any, bool) {
	if n == nil || depth > maxResolveDepth {
		return nil, false
	}
	if d, ok := n.(Defaulted); ok {
		return d.DefaultValue(), true
	}
	if w, ok := n.(Wrapper); ok {
		return extractDefault(w.Unwrap(), depth+1)
	}
	if _, ok := n.(Union); ok {
		rep, members := UnwrapUnionFirst(n)
		if rep == nil || len(members) != 1 {
			return nil, false
		}
		return extractDefault(rep, depth+1)
	}
	return nil, false
}

// DefaultsOpt controls CollectDefaults.
type DefaultsOpt struct {
	// Discriminator selects the union variant whose shape is collected.
	// Required when the schema resolves to a discriminated union.
	Discriminator *Selector
	// EmptyStringDefaults back-fills "" for members whose resolved primitive
	// kind is string and that declare no explicit default. Off by default:
	// the result contains explicit defaults only.
	EmptyStringDefaults bool
}

// CollectDefaults assembles a sparse object holding the extractable defaults
// of an object's direct members, in declared member order. Any concrete
// extracted value counts, including false, 0, and empty collections; members
// without a default are simply not present. Discriminated unions require a
// selector; a missing selector or an unmatched value yields an empty map, as
// does any schema that does not resolve to an object shape.
func CollectDefaults(n Node, opts ...DefaultsOpt) map[string]any {
	var opt DefaultsOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	out := map[string]any{}
	if n == nil {
		return out
	}
	target := ResolvePrimitive(n)
	if u, ok := target.(Union); ok && u.Discriminator() != "" {
		if opt.Discriminator == nil {
			return out
		}
		v, ok := ExtractVariant(target, opt.Discriminator.Key, opt.Discriminator.Value)
		if !ok {
			return out
		}
		target = ResolvePrimitive(v)
	}
	obj, ok := target.(Object)
	if !ok {
		return out
	}
	for _, f := range obj.Fields() {
		if v, ok := ExtractDefault(f.Schema); ok {
			out[f.Name] = v
			continue
		}
		if opt.EmptyStringDefaults {
			if p := ResolvePrimitive(f.Schema); p != nil && p.Kind() == KindString {
				out[f.Name] = ""
			}
		}
	}
	return out
}
