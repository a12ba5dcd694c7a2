package dsl

import (
	skemapath "github.com/reoring/skemapath"
)

// ArraySchema is an array node with a single element schema.
type ArraySchema struct {
	annotation
	elem   skemapath.Node
	checks []skemapath.Check
}

// Array returns an array schema with the given element schema.
func Array(elem skemapath.Node) *ArraySchema { return &ArraySchema{elem: elem} }

func (*ArraySchema) Kind() skemapath.Kind { return skemapath.KindArray }

func (a *ArraySchema) Elem() skemapath.Node { return a.elem }

func (a *ArraySchema) Checks() []skemapath.Check {
	return append([]skemapath.Check(nil), a.checks...)
}

// Min requires at least n items.
func (a *ArraySchema) Min(n int) *ArraySchema {
	a.checks = append(a.checks, skemapath.Check{Kind: skemapath.CheckMinItems, Length: &n})
	return a
}

// Max allows at most n items.
func (a *ArraySchema) Max(n int) *ArraySchema {
	a.checks = append(a.checks, skemapath.Check{Kind: skemapath.CheckMaxItems, Length: &n})
	return a
}

func (a *ArraySchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *a
	c.meta = &m
	return &c
}

// TupleSchema is a fixed-length positional node.
type TupleSchema struct {
	annotation
	items []skemapath.Node
}

// Tuple returns a positional tuple schema; each position has its own node.
func Tuple(items ...skemapath.Node) *TupleSchema {
	return &TupleSchema{items: append([]skemapath.Node(nil), items...)}
}

func (*TupleSchema) Kind() skemapath.Kind { return skemapath.KindTuple }

func (t *TupleSchema) Items() []skemapath.Node {
	return append([]skemapath.Node(nil), t.items...)
}

func (t *TupleSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *t
	c.meta = &m
	return &c
}

// MapSchema is a string-keyed map node where every value shares one schema.
// The key domain is not enumerable, so the path engine does not descend into
// it.
type MapSchema struct {
	annotation
	elem skemapath.Node
}

// Map returns a schema for objects whose properties all follow elem.
func Map(elem skemapath.Node) *MapSchema { return &MapSchema{elem: elem} }

func (*MapSchema) Kind() skemapath.Kind { return skemapath.KindMap }

func (m *MapSchema) Elem() skemapath.Node { return m.elem }

func (m *MapSchema) WithMeta(meta skemapath.Meta) skemapath.Node {
	c := *m
	c.meta = &meta
	return &c
}
