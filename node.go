package skemapath

// Kind identifies the structural category of a schema node.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindTime
	KindLiteral
	KindAny
	KindNull
	KindUndefined
	KindObject
	KindArray
	KindTuple
	KindMap
	KindUnion
	KindOptional
	KindNullable
	KindDefault
	KindTransform
	KindLazy
)

// String returns the lower-case name of the kind ("string", "object", ...).
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindLiteral:
		return "literal"
	case KindAny:
		return "any"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindDefault:
		return "default"
	case KindTransform:
		return "transform"
	case KindLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// Node is the minimal view of one schema node. Concrete implementations live
// in the dsl package (or in any other schema provider); the introspection
// operations in this package consume nodes purely through Node and the
// capability interfaces below. Nodes are immutable after construction and no
// operation in this package mutates them.
type Node interface {
	Kind() Kind
}

// Wrapper is a single-child layer around another node: optional, nullable,
// has-default, post-validation transform, or lazy indirection. Unwrap returns
// the immediate child. Rewrap produces a copy of the same wrapper layer around
// a different child without touching the receiver; RemoveDefault relies on it
// to rebuild wrapper stacks.
type Wrapper interface {
	Node
	Unwrap() Node
	Rewrap(inner Node) Node
}

// Field is one named member of an object shape.
type Field struct {
	Name   string
	Schema Node
}

// Object exposes an object shape. Fields returns members in declaration
// order; Field looks one up by name.
type Object interface {
	Node
	Fields() []Field
	Field(name string) (Node, bool)
}

// Array exposes the element schema of a homogeneous array.
type Array interface {
	Node
	Elem() Node
}

// Tuple exposes per-position schemas of a fixed-length array.
type Tuple interface {
	Node
	Items() []Node
}

// Map exposes the value schema of a record with an unconstrained key domain.
// Keys are not enumerable, so no paths are derived through map nodes.
type Map interface {
	Node
	Elem() Node
}

// Union exposes the ordered member list of a union node. Discriminator
// returns the designated tag field name, or "" for an untagged union.
type Union interface {
	Node
	Members() []Node
	Discriminator() string
}

// Literal exposes the constant value a literal node accepts.
type Literal interface {
	Node
	LiteralValue() any
}

// Defaulted is a has-default wrapper layer. DefaultValue returns the declared
// default; when the default was declared as a thunk, the thunk is invoked on
// every call and the result is never cached.
type Defaulted interface {
	Wrapper
	DefaultValue() any
}

// Checked exposes the validation-constraint records declared on a primitive
// node, in declaration order.
type Checked interface {
	Node
	Checks() []Check
}

// Annotated exposes descriptive metadata attached to a node. WithMeta returns
// an annotated copy; the receiver is left untouched.
type Annotated interface {
	Node
	Meta() *Meta
	WithMeta(m Meta) Node
}
