package skemapath

import (
	"sort"

	"github.com/reoring/skemapath/i18n"
	js "github.com/reoring/skemapath/jsonschema"
)

// ExportJSONSchema renders a schema node as a JSON Schema document. Wrapper
// layers fold into the core schema: defaults become "default", nullability
// becomes "nullable", optionality surfaces as the parent object omitting the
// member from "required". All-literal unions flatten to enum lists;
// recursive references are emitted as unconstrained schemas instead of
// looping.
func ExportJSONSchema(n Node) (*js.Schema, error) {
	if n == nil {
		return nil, Issues{{Path: "/", Code: CodeUnsupportedType, Message: i18n.T(CodeUnsupportedType, nil), Hint: "nil schema node"}}
	}
	e := &jsExporter{visited: map[Node]bool{}}
	return e.export(n)
}

type jsExporter struct {
	visited map[Node]bool // nodes on the current export stack
}

func (e *jsExporter) export(n Node) (*js.Schema, error) {
	if n == nil {
		return &js.Schema{}, nil
	}
	if e.visited[n] {
		return &js.Schema{}, nil
	}
	e.visited[n] = true
	defer delete(e.visited, n)

	s, err := e.exportNode(n)
	if err != nil {
		return nil, err
	}
	if a, ok := n.(Annotated); ok {
		if m := a.Meta(); m != nil {
			if m.Title != "" {
				s.Title = m.Title
			}
			if m.Description != "" {
				s.Description = m.Description
			}
		}
	}
	return s, nil
}

func (e *jsExporter) exportNode(n Node) (*js.Schema, error) {
	switch n.Kind() {
	case KindString:
		s := &js.Schema{Type: "string"}
		applyStringChecks(s, n)
		return s, nil
	case KindNumber:
		s := &js.Schema{Type: "number"}
		applyNumberChecks(s, n)
		return s, nil
	case KindBool:
		return &js.Schema{Type: "boolean"}, nil
	case KindTime:
		return &js.Schema{Type: "string", Format: "date-time"}, nil
	case KindAny, KindUndefined:
		return &js.Schema{}, nil
	case KindNull:
		return &js.Schema{Type: "null"}, nil
	case KindLiteral:
		lit, ok := n.(Literal)
		if !ok {
			return &js.Schema{}, nil
		}
		s := &js.Schema{Const: lit.LiteralValue()}
		switch literalBaseKind(n) {
		case KindString:
			s.Type = "string"
		case KindNumber:
			s.Type = "number"
		case KindBool:
			s.Type = "boolean"
		case KindNull:
			s.Type = "null"
		}
		return s, nil
	case KindOptional, KindTransform, KindLazy:
		return e.export(unwrapChild(n))
	case KindNullable:
		s, err := e.export(unwrapChild(n))
		if err != nil {
			return nil, err
		}
		s.Nullable = true
		return s, nil
	case KindDefault:
		s, err := e.export(unwrapChild(n))
		if err != nil {
			return nil, err
		}
		if d, ok := n.(Defaulted); ok {
			s.Default = d.DefaultValue()
		}
		return s, nil
	case KindObject:
		obj, ok := n.(Object)
		if !ok {
			return &js.Schema{Type: "object"}, nil
		}
		fields := obj.Fields()
		props := make(map[string]*js.Schema, len(fields))
		req := make([]string, 0, len(fields))
		for _, f := range fields {
			ps, err := e.export(f.Schema)
			if err != nil {
				return nil, err
			}
			props[f.Name] = ps
			if fieldRequired(f.Schema) {
				req = append(req, f.Name)
			}
		}
		// Required list (sorted for deterministic output)
		sort.Strings(req)
		return &js.Schema{Type: "object", Properties: props, Required: req}, nil
	case KindArray:
		arr, ok := n.(Array)
		if !ok {
			return &js.Schema{Type: "array"}, nil
		}
		es, err := e.export(arr.Elem())
		if err != nil {
			return nil, err
		}
		s := &js.Schema{Type: "array", Items: es}
		applyArrayChecks(s, n)
		return s, nil
	case KindTuple:
		tup, ok := n.(Tuple)
		if !ok {
			return &js.Schema{Type: "array"}, nil
		}
		items := tup.Items()
		s := &js.Schema{Type: "array", PrefixItems: make([]*js.Schema, 0, len(items))}
		for _, item := range items {
			is, err := e.export(item)
			if err != nil {
				return nil, err
			}
			s.PrefixItems = append(s.PrefixItems, is)
		}
		count := len(items)
		s.MinItems = &count
		s.MaxItems = &count
		return s, nil
	case KindMap:
		m, ok := n.(Map)
		if !ok {
			return &js.Schema{Type: "object"}, nil
		}
		es, err := e.export(m.Elem())
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "object", AdditionalProperties: es}, nil
	case KindUnion:
		u, ok := n.(Union)
		if !ok {
			return &js.Schema{}, nil
		}
		if vals, typ, ok := enumValues(u.Members()); ok {
			return &js.Schema{Type: typ, Enum: vals}, nil
		}
		out := &js.Schema{}
		for _, m := range u.Members() {
			if m == nil || m.Kind() == KindUndefined {
				continue
			}
			vs, err := e.export(m)
			if err != nil {
				return nil, err
			}
			out.OneOf = append(out.OneOf, vs)
		}
		if key := u.Discriminator(); key != "" {
			out.Discriminator = &js.Discriminator{PropertyName: key}
		}
		return out, nil
	}
	return nil, Issues{{Path: "/", Code: CodeUnsupportedType, Message: i18n.T(CodeUnsupportedType, nil), Hint: n.Kind().String()}}
}

// enumValues returns the constants of an all-literal union and their shared
// JSON type name ("" when base kinds are mixed). ok is false when any
// non-undefined member is not a literal or fewer than two remain.
func enumValues(members []Node) (vals []any, typ string, ok bool) {
	for _, m := range members {
		if m == nil || m.Kind() == KindUndefined {
			continue
		}
		lit, isLit := m.(Literal)
		if !isLit || m.Kind() != KindLiteral {
			return nil, "", false
		}
		vals = append(vals, lit.LiteralValue())
		var t string
		switch literalBaseKind(m) {
		case KindString:
			t = "string"
		case KindNumber:
			t = "number"
		case KindBool:
			t = "boolean"
		case KindNull:
			t = "null"
		}
		if len(vals) == 1 {
			typ = t
		} else if typ != t {
			typ = ""
		}
	}
	return vals, typ, len(vals) > 1
}

// fieldRequired reports whether an object member must be present in input:
// no undefined alternative and no default to materialize a missing value.
func fieldRequired(n Node) bool {
	if peelType(n, 0).undefined {
		return false
	}
	if _, ok := ExtractDefault(n); ok {
		return false
	}
	return true
}

func applyStringChecks(s *js.Schema, n Node) {
	c, ok := n.(Checked)
	if !ok {
		return
	}
	for _, ch := range c.Checks() {
		switch ch.Kind {
		case CheckMinLength:
			if ch.Length != nil {
				v := *ch.Length
				s.MinLength = &v
			}
		case CheckMaxLength:
			if ch.Length != nil {
				v := *ch.Length
				s.MaxLength = &v
			}
		case CheckLength:
			if ch.Length != nil {
				lo, hi := *ch.Length, *ch.Length
				s.MinLength = &lo
				s.MaxLength = &hi
			}
		case CheckPattern:
			s.Pattern = ch.Pattern
		case CheckFormat:
			s.Format = ch.Format
		}
	}
}

func applyNumberChecks(s *js.Schema, n Node) {
	c, ok := n.(Checked)
	if !ok {
		return
	}
	for _, ch := range c.Checks() {
		switch ch.Kind {
		case CheckInteger:
			s.Type = "integer"
		case CheckGreaterThan:
			if ch.Bound != nil {
				v := *ch.Bound
				if ch.Inclusive {
					s.Minimum = &v
				} else {
					s.ExclusiveMinimum = &v
				}
			}
		case CheckLessThan:
			if ch.Bound != nil {
				v := *ch.Bound
				if ch.Inclusive {
					s.Maximum = &v
				} else {
					s.ExclusiveMaximum = &v
				}
			}
		case CheckMultipleOf:
			if ch.Bound != nil {
				v := *ch.Bound
				s.MultipleOf = &v
			}
		}
	}
}

func applyArrayChecks(s *js.Schema, n Node) {
	c, ok := n.(Checked)
	if !ok {
		return
	}
	for _, ch := range c.Checks() {
		switch ch.Kind {
		case CheckMinItems:
			if ch.Length != nil {
				v := *ch.Length
				s.MinItems = &v
			}
		case CheckMaxItems:
			if ch.Length != nil {
				v := *ch.Length
				s.MaxItems = &v
			}
		}
	}
}
