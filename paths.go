package skemapath

import "strconv"

// AnyIndex is the placeholder segment emitted for runtime-chosen array
// indices ("items.*.label"). Navigation needs a concrete index; substitute
// one with WithIndex first.
const AnyIndex = "*"

const (
	// maxSelfNesting is how many times a node may re-enter itself along one
	// walk path: one level of self-nesting is reachable, deeper levels are
	// cut off.
	maxSelfNesting = 1
	// maxWalkDepth is the hard recursion stop for traversal and structural
	// comparison.
	maxWalkDepth = 32
)

// PathsOpt configures Paths.
type PathsOpt struct {
	// Filter keeps only paths whose value type matches this node; nil keeps
	// every reachable path.
	Filter Node
	// Loose accepts a match on any union constituent and never blocks
	// descent through optional/nullable parents. The default (strict) mode
	// requires the candidate's nullish alternatives to be covered by the
	// filter and blocks descent through optional/nullable values when the
	// filter carries no nullish alternatives.
	Loose bool
}

// Paths enumerates the dot-paths reachable in the data described by n,
// depth-first in declaration order. Array positions produce both the literal
// "0" segment and the AnyIndex placeholder; tuples produce one literal
// segment per position; map nodes produce no paths through their key domain
// (keys are not enumerable). Untagged unions are walked through their
// representative member, the same member the runtime navigator resolves to;
// discriminated unions are opaque here and are addressed via ValidPaths.
func Paths(n Node, opts ...PathsOpt) []string {
	var opt PathsOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if n == nil {
		return nil
	}
	w := &pathWalker{filter: newTypeFilter(opt.Filter, opt.Loose), visited: map[Node]int{}}
	if w.filter.descend(n) {
		w.walk(n, "", 0)
	}
	return w.out
}

// ValidPathsOpt configures ValidPaths.
type ValidPathsOpt struct {
	// Discriminator narrows a discriminated union to one variant before the
	// walk. No match means no paths.
	Discriminator *Selector
	Filter        Node
	Loose         bool
}

// ValidPaths composes discriminator narrowing with the path engine: the
// schema is first narrowed via DiscriminatedInput, then Paths runs on the
// narrowed node.
func ValidPaths(n Node, opts ...ValidPathsOpt) []string {
	var opt ValidPathsOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	target, ok := DiscriminatedInput(n, opt.Discriminator)
	if !ok {
		return nil
	}
	return Paths(target, PathsOpt{Filter: opt.Filter, Loose: opt.Loose})
}

// WithIndex substitutes the first AnyIndex segment of a template path with a
// concrete index. Paths without a placeholder are returned unchanged.
func WithIndex(path string, index int) string {
	if index < 0 || path == "" {
		return path
	}
	segs := splitPath(path)
	for i, s := range segs {
		if s == AnyIndex {
			segs[i] = strconv.Itoa(index)
			return joinSegments(segs)
		}
	}
	return path
}

// ---- traversal ----

type pathWalker struct {
	filter  typeFilter
	visited map[Node]int // active expansions per node along the current walk path
	out     []string
}

func (w *pathWalker) walk(n Node, prefix string, depth int) {
	if n == nil || depth > maxWalkDepth {
		return
	}
	core := peelType(n, 0).core
	if core == nil {
		return
	}
	if w.visited[core] > maxSelfNesting {
		return
	}
	w.visited[core]++
	defer func() { w.visited[core]-- }()

	switch c := core.(type) {
	case Object:
		for _, f := range c.Fields() {
			if f.Schema == nil {
				continue
			}
			p := joinPath(prefix, f.Name)
			if w.filter.matches(f.Schema) {
				w.out = append(w.out, p)
			}
			if w.filter.descend(f.Schema) {
				w.walk(f.Schema, p, depth+1)
			}
		}
	case Tuple:
		for i, item := range c.Items() {
			if item == nil {
				continue
			}
			p := joinPath(prefix, strconv.Itoa(i))
			if w.filter.matches(item) {
				w.out = append(w.out, p)
			}
			if w.filter.descend(item) {
				w.walk(item, p, depth+1)
			}
		}
	case Array:
		elem := c.Elem()
		if elem == nil {
			return
		}
		sub := w.elemPaths(elem, depth+1)
		for _, s := range sub {
			w.out = append(w.out, indexPath(prefix, "0", s))
		}
		for _, s := range sub {
			w.out = append(w.out, indexPath(prefix, AnyIndex, s))
		}
	}
}

// elemPaths collects the element's own candidacy (the empty suffix) plus its
// nested paths once; the caller prefixes the result with both index forms,
// which resolve to the same element type.
func (w *pathWalker) elemPaths(elem Node, depth int) []string {
	var sub []string
	if w.filter.matches(elem) {
		sub = append(sub, "")
	}
	if w.filter.descend(elem) {
		saved := w.out
		w.out = nil
		w.walk(elem, "", depth)
		sub = append(sub, w.out...)
		w.out = saved
	}
	return sub
}

func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

func indexPath(prefix, idx, suffix string) string {
	p := joinPath(prefix, idx)
	if suffix == "" {
		return p
	}
	return p + "." + suffix
}

func splitPath(path string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	return append(segs, path[start:])
}

func joinSegments(segs []string) string {
	out := ""
	for i, s := range segs {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

// ---- type peeling and filter matching ----

// peeledType is a node's value-type summary: the non-nullish core, whether
// undefined/null are accepted alternatives, and the remaining members when
// the outermost layer is a multi-member untagged union.
type peeledType struct {
	core      Node
	undefined bool
	null      bool
	members   []Node
}

func peelType(n Node, depth int) peeledType {
	if n == nil || depth > maxResolveDepth {
		return peeledType{}
	}
	switch n.Kind() {
	case KindOptional:
		in := peelType(unwrapChild(n), depth+1)
		in.undefined = true
		return in
	case KindNullable:
		in := peelType(unwrapChild(n), depth+1)
		in.null = true
		return in
	case KindDefault:
		// a default materializes missing input, so the value type loses the
		// undefined alternative
		in := peelType(unwrapChild(n), depth+1)
		in.undefined = false
		return in
	case KindTransform, KindLazy:
		return peelType(unwrapChild(n), depth+1)
	}
	if w, ok := n.(Wrapper); ok {
		return peelType(w.Unwrap(), depth+1)
	}
	if u, ok := n.(Union); ok {
		if u.Discriminator() != "" {
			return peeledType{core: n}
		}
		var un, nl bool
		for _, m := range u.Members() {
			if m == nil {
				continue
			}
			switch m.Kind() {
			case KindNull:
				nl = true
			case KindUndefined:
				un = true
			}
		}
		rep, members := UnwrapUnionFirst(n)
		if rep == nil {
			return peeledType{undefined: un, null: nl}
		}
		in := peelType(rep, depth+1)
		in.undefined = in.undefined || un
		in.null = in.null || nl
		if len(members) > 1 {
			in.members = members
		}
		return in
	}
	return peeledType{core: n}
}

func unwrapChild(n Node) Node {
	if w, ok := n.(Wrapper); ok {
		return w.Unwrap()
	}
	return nil
}

type typeFilter struct {
	all       bool
	loose     bool
	core      Node
	undefined bool
	null      bool
}

func newTypeFilter(f Node, loose bool) typeFilter {
	if f == nil {
		return typeFilter{all: true, loose: loose}
	}
	i := peelType(f, 0)
	return typeFilter{loose: loose, core: i.core, undefined: i.undefined, null: i.null}
}

// matches decides whether a candidate path whose value has type v is emitted.
func (tf typeFilter) matches(v Node) bool {
	if tf.all {
		return true
	}
	if v == nil || tf.core == nil {
		return false
	}
	i := peelType(v, 0)
	if tf.loose {
		if len(i.members) > 1 {
			for _, m := range i.members {
				im := peelType(m, 0)
				if coreEqual(im.core, tf.core, 0) {
					return true
				}
			}
			return false
		}
		return coreEqual(i.core, tf.core, 0)
	}
	if len(i.members) > 1 {
		return false
	}
	if (i.undefined && !tf.undefined) || (i.null && !tf.null) {
		return false
	}
	return coreEqual(i.core, tf.core, 0)
}

// descend decides whether traversal may continue into v's members.
func (tf typeFilter) descend(v Node) bool {
	if tf.all || tf.loose {
		return true
	}
	if v == nil {
		return false
	}
	i := peelType(v, 0)
	if (i.undefined && !tf.undefined) || (i.null && !tf.null) {
		return false
	}
	return true
}

// exactTypeEqual compares two value types including their nullish
// alternatives; used below the top level, where the subset rule no longer
// applies.
func exactTypeEqual(a, b Node, depth int) bool {
	if depth > maxWalkDepth {
		return false
	}
	ia := peelType(a, 0)
	ib := peelType(b, 0)
	if ia.undefined != ib.undefined || ia.null != ib.null {
		return false
	}
	if len(ia.members) > 1 || len(ib.members) > 1 {
		if len(ia.members) != len(ib.members) {
			return false
		}
		for i := range ia.members {
			if !exactTypeEqual(ia.members[i], ib.members[i], depth+1) {
				return false
			}
		}
		return true
	}
	return coreEqual(ia.core, ib.core, depth)
}

// coreEqual compares two peeled cores structurally. A literal core matches a
// base-kind core of its value's kind (the literal is the narrower type); the
// reverse direction does not match.
func coreEqual(a, b Node, depth int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if depth > maxWalkDepth {
		return false
	}
	ka, kb := a.Kind(), b.Kind()
	if ka == KindLiteral && kb != KindLiteral {
		return literalBaseKind(a) == kb
	}
	if ka != kb {
		return false
	}
	switch ka {
	case KindString, KindNumber, KindBool, KindTime, KindAny, KindNull, KindUndefined:
		return true
	case KindLiteral:
		la, ok1 := a.(Literal)
		lb, ok2 := b.(Literal)
		return ok1 && ok2 && literalEqual(la.LiteralValue(), lb.LiteralValue())
	case KindArray:
		aa, ok1 := a.(Array)
		ab, ok2 := b.(Array)
		return ok1 && ok2 && exactTypeEqual(aa.Elem(), ab.Elem(), depth+1)
	case KindMap:
		ma, ok1 := a.(Map)
		mb, ok2 := b.(Map)
		return ok1 && ok2 && exactTypeEqual(ma.Elem(), mb.Elem(), depth+1)
	case KindTuple:
		ta, ok1 := a.(Tuple)
		tb, ok2 := b.(Tuple)
		if !ok1 || !ok2 {
			return false
		}
		ia, ib := ta.Items(), tb.Items()
		if len(ia) != len(ib) {
			return false
		}
		for i := range ia {
			if !exactTypeEqual(ia[i], ib[i], depth+1) {
				return false
			}
		}
		return true
	case KindObject:
		oa, ok1 := a.(Object)
		ob, ok2 := b.(Object)
		if !ok1 || !ok2 {
			return false
		}
		fa := oa.Fields()
		if len(fa) != len(ob.Fields()) {
			return false
		}
		for _, f := range fa {
			g, ok := ob.Field(f.Name)
			if !ok || !exactTypeEqual(f.Schema, g, depth+1) {
				return false
			}
		}
		return true
	case KindUnion:
		ua, ok1 := a.(Union)
		ub, ok2 := b.(Union)
		if !ok1 || !ok2 || ua.Discriminator() != ub.Discriminator() {
			return false
		}
		ma, mb := ua.Members(), ub.Members()
		if len(ma) != len(mb) {
			return false
		}
		for i := range ma {
			if !exactTypeEqual(ma[i], mb[i], depth+1) {
				return false
			}
		}
		return true
	}
	return false
}

func literalBaseKind(n Node) Kind {
	lit, ok := n.(Literal)
	if !ok {
		return KindLiteral
	}
	switch v := lit.LiteralValue().(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case nil:
		return KindNull
	default:
		if _, ok := toFloat(v); ok {
			return KindNumber
		}
		return KindLiteral
	}
}
