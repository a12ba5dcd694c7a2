package dsl

import (
	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/i18n"
)

// UnionSchema is a union node, untagged or discriminated.
type UnionSchema struct {
	annotation
	discriminator string
	members       []skemapath.Node
}

// Union returns an untagged union over members.
func Union(members ...skemapath.Node) *UnionSchema {
	return &UnionSchema{members: append([]skemapath.Node(nil), members...)}
}

// DiscriminatedUnion returns a tagged union whose variant is selected by the
// named member, typically a Literal on each variant object.
func DiscriminatedUnion(key string, members ...skemapath.Node) *UnionSchema {
	return &UnionSchema{discriminator: key, members: append([]skemapath.Node(nil), members...)}
}

// Enum returns an untagged union of string literals.
func Enum(values ...string) *UnionSchema {
	ms := make([]skemapath.Node, 0, len(values))
	for _, v := range values {
		ms = append(ms, Literal(v))
	}
	return Union(ms...)
}

func (*UnionSchema) Kind() skemapath.Kind { return skemapath.KindUnion }

func (u *UnionSchema) Members() []skemapath.Node {
	return append([]skemapath.Node(nil), u.members...)
}

func (u *UnionSchema) Discriminator() string { return u.discriminator }

// Validate reports declaration problems: a union without members, or a
// discriminated union whose variants do not all declare the selector key.
// Extraction stays lenient at runtime; this is for surfacing mistakes early.
func (u *UnionSchema) Validate() error {
	var iss skemapath.Issues
	if len(u.members) == 0 {
		iss = skemapath.AppendIssues(iss, skemapath.Issue{
			Path:    "/",
			Code:    skemapath.CodeEmptyUnion,
			Message: i18n.T(skemapath.CodeEmptyUnion, nil),
		})
	}
	if u.discriminator != "" {
		for _, m := range u.members {
			obj, ok := skemapath.ResolvePrimitive(m).(skemapath.Object)
			if !ok {
				iss = skemapath.AppendIssues(iss, skemapath.Issue{
					Path:    "/" + u.discriminator,
					Code:    skemapath.CodeDiscriminatorMissing,
					Message: i18n.T(skemapath.CodeDiscriminatorMissing, nil),
					Hint:    "variant is not object-shaped",
				})
				continue
			}
			if _, ok := obj.Field(u.discriminator); !ok {
				iss = skemapath.AppendIssues(iss, skemapath.Issue{
					Path:    "/" + u.discriminator,
					Code:    skemapath.CodeDiscriminatorMissing,
					Message: i18n.T(skemapath.CodeDiscriminatorMissing, nil),
					Hint:    "variant does not declare the selector key",
				})
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (u *UnionSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *u
	c.meta = &m
	return &c
}
