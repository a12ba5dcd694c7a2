package dsl

import (
	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/i18n"
)

// ObjectBuilder accumulates object members in declaration order.
type ObjectBuilder struct {
	fields []skemapath.Field
	seen   map[string]struct{}
	issues skemapath.Issues
}

// Object creates a new object builder. Declaration order is preserved and
// becomes the traversal order for paths and defaults.
func Object() *ObjectBuilder {
	return &ObjectBuilder{seen: map[string]struct{}{}}
}

// Field registers a member schema under its external key.
func (b *ObjectBuilder) Field(name string, n skemapath.Node) *ObjectBuilder {
	if _, dup := b.seen[name]; dup {
		b.issues = skemapath.AppendIssues(b.issues, skemapath.Issue{
			Path:    "/" + name,
			Code:    skemapath.CodeDuplicateKey,
			Message: i18n.T(skemapath.CodeDuplicateKey, nil),
			Hint:    "field registered twice",
		})
		return b
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, skemapath.Field{Name: name, Schema: n})
	return b
}

// Build materializes the object node. Duplicate keys surface as Issues.
func (b *ObjectBuilder) Build() (skemapath.Node, error) {
	if len(b.issues) > 0 {
		return nil, b.issues
	}
	return &ObjectSchema{fields: append([]skemapath.Field(nil), b.fields...)}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() skemapath.Node {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema is an object node with ordered members.
type ObjectSchema struct {
	annotation
	fields []skemapath.Field
}

func (*ObjectSchema) Kind() skemapath.Kind { return skemapath.KindObject }

// Fields returns the members in declaration order.
func (o *ObjectSchema) Fields() []skemapath.Field {
	return append([]skemapath.Field(nil), o.fields...)
}

// Field looks up a member schema by its external key.
func (o *ObjectSchema) Field(name string) (skemapath.Node, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

func (o *ObjectSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *o
	c.meta = &m
	return &c
}
