package skemapath

import (
	"reflect"
	"time"
)

// Selector names a discriminator key/value pair used to narrow a
// discriminated union to one variant.
type Selector struct {
	Key   string
	Value any
}

// Accepts reports whether a value would satisfy the node's declared constant
// or kind constraint. Wrapper layers are peeled first; a union accepts when
// any member accepts. Literal nodes test normalized equality (numeric
// literals compare across integer/float representations); other primitive
// kinds accept values of the matching dynamic type. This is the
// validate-a-candidate primitive behind ExtractVariant.
func Accepts(n Node, v any) bool {
	return accepts(n, v, 0)
}

func accepts(n Node, v any, depth int) bool {
	if n == nil || depth > maxResolveDepth {
		return false
	}
	if w, ok := n.(Wrapper); ok {
		return accepts(w.Unwrap(), v, depth+1)
	}
	if u, ok := n.(Union); ok {
		for _, m := range u.Members() {
			if accepts(m, v, depth+1) {
				return true
			}
		}
		return false
	}
	switch n.Kind() {
	case KindLiteral:
		lit, ok := n.(Literal)
		return ok && literalEqual(lit.LiteralValue(), v)
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		_, ok := toFloat(v)
		return ok
	case KindTime:
		_, ok := v.(time.Time)
		return ok
	case KindNull, KindUndefined:
		return v == nil
	case KindAny:
		return true
	}
	return false
}

// literalEqual compares two literal values, normalizing numeric
// representations so that 1 matches 1.0.
func literalEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok2 := toFloat(b)
		return ok2 && af == bf
	}
	if as, ok := a.(string); ok {
		bs, ok2 := b.(string)
		return ok2 && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok2 := b.(bool)
		return ok2 && ab == bb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// ExtractVariant returns the first member of a discriminated union whose
// discriminator field accepts the given value. The union is resolved to its
// primitive form first; members that are not object-shaped or do not declare
// the key are skipped. First match wins. Plain unions, unmatched values, and
// an empty key all yield absent.
func ExtractVariant(n Node, key string, value any) (Node, bool) {
	if n == nil || key == "" {
		return nil, false
	}
	u, ok := ResolvePrimitive(n).(Union)
	if !ok || u.Discriminator() == "" {
		return nil, false
	}
	for _, m := range u.Members() {
		obj, ok := ResolvePrimitive(m).(Object)
		if !ok {
			continue
		}
		sub, ok := obj.Field(key)
		if !ok {
			continue
		}
		if Accepts(sub, value) {
			return m, true
		}
	}
	return nil, false
}

// DiscriminatedInput narrows a schema to the variant selected by sel. A nil
// selector leaves the schema untouched; a selector that matches no variant
// yields absent.
func DiscriminatedInput(n Node, sel *Selector) (Node, bool) {
	if sel == nil {
		return n, n != nil
	}
	return ExtractVariant(n, sel.Key, sel.Value)
}
