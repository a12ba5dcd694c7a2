package dsl

import (
	"sync"

	skemapath "github.com/reoring/skemapath"
)

// OptionalSchema marks its inner node as omittable.
type OptionalSchema struct {
	annotation
	inner skemapath.Node
}

// Optional marks inner as omittable.
func Optional(inner skemapath.Node) *OptionalSchema { return &OptionalSchema{inner: inner} }

func (*OptionalSchema) Kind() skemapath.Kind { return skemapath.KindOptional }

func (s *OptionalSchema) Unwrap() skemapath.Node { return s.inner }

func (s *OptionalSchema) Rewrap(inner skemapath.Node) skemapath.Node {
	c := *s
	c.inner = inner
	return &c
}

func (s *OptionalSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// NullableSchema additionally accepts null for its inner node.
type NullableSchema struct {
	annotation
	inner skemapath.Node
}

// Nullable additionally accepts null for inner.
func Nullable(inner skemapath.Node) *NullableSchema { return &NullableSchema{inner: inner} }

func (*NullableSchema) Kind() skemapath.Kind { return skemapath.KindNullable }

func (s *NullableSchema) Unwrap() skemapath.Node { return s.inner }

func (s *NullableSchema) Rewrap(inner skemapath.Node) skemapath.Node {
	c := *s
	c.inner = inner
	return &c
}

func (s *NullableSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// DefaultSchema supplies a fallback when input is absent.
type DefaultSchema struct {
	annotation
	inner skemapath.Node
	value func() any
}

// Default wraps inner with a constant fallback value.
func Default(inner skemapath.Node, v any) *DefaultSchema {
	return &DefaultSchema{inner: inner, value: func() any { return v }}
}

// DefaultFunc wraps inner with a fallback computed per call. The thunk runs
// every time the default is read, so mutable values are never shared between
// readers.
func DefaultFunc(inner skemapath.Node, fn func() any) *DefaultSchema {
	return &DefaultSchema{inner: inner, value: fn}
}

func (*DefaultSchema) Kind() skemapath.Kind { return skemapath.KindDefault }

func (s *DefaultSchema) Unwrap() skemapath.Node { return s.inner }

func (s *DefaultSchema) Rewrap(inner skemapath.Node) skemapath.Node {
	c := *s
	c.inner = inner
	return &c
}

func (s *DefaultSchema) DefaultValue() any {
	if s.value == nil {
		return nil
	}
	return s.value()
}

func (s *DefaultSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// TransformSchema records a post-parse transformation over inner.
// Introspection sees through it; the function is carried for the runtime
// that applies it.
type TransformSchema struct {
	annotation
	inner skemapath.Node
	fn    func(any) any
}

// Transform layers a transformation function over inner.
func Transform(inner skemapath.Node, fn func(any) any) *TransformSchema {
	return &TransformSchema{inner: inner, fn: fn}
}

func (*TransformSchema) Kind() skemapath.Kind { return skemapath.KindTransform }

func (s *TransformSchema) Unwrap() skemapath.Node { return s.inner }

func (s *TransformSchema) Rewrap(inner skemapath.Node) skemapath.Node {
	c := *s
	c.inner = inner
	return &c
}

// Apply runs the transformation; a nil function is identity.
func (s *TransformSchema) Apply(v any) any {
	if s.fn == nil {
		return v
	}
	return s.fn(v)
}

func (s *TransformSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// LazySchema defers node construction until first use, enabling
// self-referential schemas.
type LazySchema struct {
	annotation
	fn       func() skemapath.Node
	once     sync.Once
	resolved skemapath.Node
}

// Lazy defers construction of the inner node until first unwrap. The thunk
// runs once; later unwraps reuse the resolved node so cycle detection keeps
// working on stable identities.
func Lazy(fn func() skemapath.Node) *LazySchema { return &LazySchema{fn: fn} }

func (*LazySchema) Kind() skemapath.Kind { return skemapath.KindLazy }

func (s *LazySchema) Unwrap() skemapath.Node {
	s.once.Do(func() {
		if s.fn != nil {
			s.resolved = s.fn()
		}
	})
	return s.resolved
}

func (s *LazySchema) Rewrap(inner skemapath.Node) skemapath.Node {
	return &LazySchema{annotation: s.annotation, fn: func() skemapath.Node { return inner }}
}

func (s *LazySchema) WithMeta(m skemapath.Meta) skemapath.Node {
	return &LazySchema{annotation: annotation{meta: &m}, fn: func() skemapath.Node { return s.Unwrap() }}
}
