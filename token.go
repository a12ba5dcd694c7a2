package skemapath

import (
	"reflect"
	"strings"
)

// FieldToken identifies a top-level struct field of T by its external key
// name. Obtain it via FieldOf to ensure compile-time linkage to the struct
// field. It intentionally supports only top-level fields of T.
type FieldToken[T any] struct {
	key string
}

// Key returns the external key name associated with this field token.
func (t FieldToken[T]) Key() string { return t.key }

// Path returns the token as a dot-path accepted by ExtractField.
func (t FieldToken[T]) Path() string { return t.key }

// FieldPathToken identifies a nested struct field path of T using external
// key names. Produced by PathOf. Keys are top-level-first.
type FieldPathToken[T any] struct {
	keys []string
}

// Keys returns the key path segments.
func (t FieldPathToken[T]) Keys() []string { return append([]string(nil), t.keys...) }

// Path returns the dot-joined form accepted by ExtractField and Paths
// filters.
func (t FieldPathToken[T]) Path() string { return strings.Join(t.keys, ".") }

// FieldNameOf returns the external key name for a top-level field of S
// selected by selector.
// Example: FieldNameOf[OrderItem](func(i *OrderItem) *string { return &i.SKU }) -> "sku".
func FieldNameOf[S any, F any](selector func(*S) *F) string {
	if selector == nil {
		panic("skemapath.FieldNameOf: selector must not be nil")
	}
	var zero S
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				panic("skemapath.FieldNameOf: selected field is not exported or disabled")
			}
			return name
		}
	}
	panic("skemapath.FieldNameOf: selector must return address of a top-level field")
}

// FieldOf builds a FieldToken for a top-level field of T.
// The selector must return the address of a top-level field, e.g.:
//
//	FieldOf[Order](func(o *Order) *string { return &o.Status })
//
// This guarantees compile-time errors if the field is renamed/removed.
func FieldOf[T any, F any](selector func(*T) *F) FieldToken[T] {
	if selector == nil {
		panic("skemapath.FieldOf: selector must not be nil")
	}
	var zero T
	// Get pointer to selected field within zero value of T
	fp := reflect.ValueOf(selector(&zero)).Pointer()

	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		fv := rv.Field(i)
		if !fv.CanAddr() {
			continue
		}
		if fv.Addr().Pointer() == fp {
			name := ResolveStructKey(rt.Field(i))
			if name == "" || name == "-" {
				panic("skemapath.FieldOf: selected field is not exported or disabled")
			}
			return FieldToken[T]{key: name}
		}
	}
	panic("skemapath.FieldOf: selector must return address of a top-level field of T")
}

// PathOf builds a FieldPathToken for an arbitrary nested field of T.
// The selector must return the address of a nested field, e.g.:
//
//	PathOf[Order, string](func(o *Order) *string { return &o.User.UserID })
//
// Limitations: Only descends through struct fields (non-pointer). Pointer hops
// are not supported in this initial version.
func PathOf[T any, F any](selector func(*T) *F) FieldPathToken[T] {
	if selector == nil {
		panic("skemapath.PathOf: selector must not be nil")
	}
	var zero T
	target := reflect.ValueOf(selector(&zero)).Pointer()
	keys, ok := findPathKeys[T](reflect.ValueOf(&zero).Elem(), target, 0)
	if !ok || len(keys) == 0 {
		panic("skemapath.PathOf: selector must address a nested struct field (non-pointer)")
	}
	return FieldPathToken[T]{keys: keys}
}

func findPathKeys[T any](v reflect.Value, target uintptr, depth int) ([]string, bool) {
	if depth > maxWalkDepth {
		return nil, false
	}
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == target {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				return nil, false
			}
			return []string{name}, true
		}
		// Recurse into nested structs only (skip pointers for safety)
		if fv.Kind() == reflect.Struct {
			if rest, ok := findPathKeys[T](fv, target, depth+1); ok {
				name := ResolveStructKey(sf)
				if name == "" || name == "-" {
					return nil, false
				}
				return append([]string{name}, rest...), true
			}
		}
	}
	return nil, false
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used by tokens and path strings.
// Priority: skemapath:"name=..." > json tag name > field name; "-" disables
// the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("skemapath"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
