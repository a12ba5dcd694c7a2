// Package openapi compiles JSON Schema / OpenAPI v3 style descriptors into
// schema nodes, so documents authored elsewhere can be introspected with
// skemapath. The importer covers the structural subset: type/format,
// properties/required, items/prefixItems, enum/const, oneOf with an optional
// discriminator, additionalProperties as a value schema, nullable, default,
// and the common string/number/array constraint keywords. Local $ref to
// $defs, definitions, or components/schemas is resolved, including
// self-referential definitions.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	j "github.com/goccy/go-json"

	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/dsl"
	"github.com/reoring/skemapath/i18n"
)

const maxImportDepth = 32

// Options controls descriptor import behavior.
type Options struct {
	// TolerateUnknown maps unrecognized type keywords to Any instead of
	// failing the import; a warning is recorded either way.
	TolerateUnknown bool
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

// Import compiles a descriptor into a schema node. The input can be raw JSON
// bytes or a decoded map[string]any. Object members import in sorted key
// order since JSON maps carry no order of their own.
func Import(schema any, opts Options) (skemapath.Node, Diag, error) {
	d := &simpleDiag{}
	if schema == nil {
		return nil, d, skemapath.Issues{{Path: "/", Code: skemapath.CodeInvalidDescriptor, Message: i18n.T(skemapath.CodeInvalidDescriptor, nil), Hint: "nil descriptor"}}
	}
	var root map[string]any
	switch t := schema.(type) {
	case []byte:
		if err := j.Unmarshal(t, &root); err != nil {
			return nil, d, skemapath.Issues{{Path: "/", Code: skemapath.CodeParseError, Message: i18n.T(skemapath.CodeParseError, nil), Cause: err}}
		}
	case map[string]any:
		root = t
	default:
		// try json.Marshaler style
		b, err := j.Marshal(t)
		if err != nil {
			return nil, d, skemapath.Issues{{Path: "/", Code: skemapath.CodeParseError, Message: i18n.T(skemapath.CodeParseError, nil), Cause: err}}
		}
		if err := j.Unmarshal(b, &root); err != nil {
			return nil, d, skemapath.Issues{{Path: "/", Code: skemapath.CodeParseError, Message: i18n.T(skemapath.CodeParseError, nil), Cause: err}}
		}
	}
	imp := &importer{
		opts:      opts,
		d:         d,
		defs:      extractDefs(root),
		built:     map[string]skemapath.Node{},
		resolving: map[string]bool{},
	}
	n, err := imp.importNode(root, "", 0)
	return n, d, err
}

type importer struct {
	opts      Options
	d         *simpleDiag
	defs      map[string]map[string]any
	built     map[string]skemapath.Node
	resolving map[string]bool // definition names on the current resolution stack
}

// extractDefs indexes locally defined schemas under their short names.
func extractDefs(root map[string]any) map[string]map[string]any {
	out := map[string]map[string]any{}
	collect := func(v any) {
		m, ok := v.(map[string]any)
		if !ok {
			return
		}
		for name, raw := range m {
			if sm, ok := raw.(map[string]any); ok {
				out[name] = sm
			}
		}
	}
	collect(root["$defs"])
	collect(root["definitions"])
	if comp, ok := root["components"].(map[string]any); ok {
		collect(comp["schemas"])
	}
	return out
}

func (imp *importer) importNode(doc map[string]any, path string, depth int) (skemapath.Node, error) {
	if depth > maxImportDepth {
		return nil, imp.invalid(path, "descriptor nesting too deep")
	}
	if ref, ok := doc["$ref"].(string); ok {
		return imp.importRef(ref, path, depth)
	}
	core, err := imp.importCore(doc, path, depth)
	if err != nil {
		return nil, err
	}
	if b, ok := doc["nullable"].(bool); ok && b {
		core = dsl.Nullable(core)
	}
	if dv, ok := doc["default"]; ok {
		core = dsl.Default(core, dv)
	}
	return withMetaFromDoc(core, doc), nil
}

func (imp *importer) importCore(doc map[string]any, path string, depth int) (skemapath.Node, error) {
	if cv, ok := doc["const"]; ok {
		return dsl.Literal(cv), nil
	}
	if ev, ok := doc["enum"].([]any); ok {
		ms := make([]skemapath.Node, 0, len(ev))
		for _, v := range ev {
			ms = append(ms, dsl.Literal(v))
		}
		return dsl.Union(ms...), nil
	}
	if raw, ok := doc["oneOf"].([]any); ok {
		return imp.importUnion(raw, doc, path, depth)
	}
	if raw, ok := doc["anyOf"].([]any); ok {
		return imp.importUnion(raw, doc, path, depth)
	}

	t, _ := doc["type"].(string)
	switch t {
	case "string":
		if f, _ := doc["format"].(string); f == "date-time" {
			return dsl.Time(), nil
		}
		return importString(doc), nil
	case "number", "integer":
		return importNumber(doc, t == "integer"), nil
	case "boolean":
		return dsl.Bool(), nil
	case "null":
		return dsl.Null(), nil
	case "object":
		return imp.importObject(doc, path, depth)
	case "array":
		return imp.importArray(doc, path, depth)
	case "":
		// untyped: infer from shape keywords
		if _, ok := doc["properties"]; ok {
			return imp.importObject(doc, path, depth)
		}
		if _, ok := doc["additionalProperties"].(map[string]any); ok {
			return imp.importObject(doc, path, depth)
		}
		if _, ok := doc["items"]; ok {
			return imp.importArray(doc, path, depth)
		}
		if _, ok := doc["prefixItems"]; ok {
			return imp.importArray(doc, path, depth)
		}
		return dsl.Any(), nil
	}
	if imp.opts.TolerateUnknown {
		imp.d.warnf("unknown type %q at %s treated as any", t, pointerOrRoot(path))
		return dsl.Any(), nil
	}
	return nil, skemapath.Issues{{Path: pointerOrRoot(path), Code: skemapath.CodeUnsupportedType, Message: i18n.T(skemapath.CodeUnsupportedType, nil), Hint: "type=" + t}}
}

func (imp *importer) importObject(doc map[string]any, path string, depth int) (skemapath.Node, error) {
	props, hasProps := doc["properties"].(map[string]any)
	if !hasProps {
		if ap, ok := doc["additionalProperties"].(map[string]any); ok {
			elem, err := imp.importNode(ap, path+"/additionalProperties", depth+1)
			if err != nil {
				return nil, err
			}
			return dsl.Map(elem), nil
		}
		return dsl.Object().MustBuild(), nil
	}
	if _, ok := doc["additionalProperties"].(map[string]any); ok {
		imp.d.warnf("additionalProperties alongside properties is ignored at %s", pointerOrRoot(path))
	}
	required := requiredSet(doc)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	b := dsl.Object()
	for _, name := range names {
		ps, ok := props[name].(map[string]any)
		if !ok {
			return nil, imp.invalid(path+"/properties/"+name, "property is not an object")
		}
		fn, err := imp.importNode(ps, path+"/properties/"+name, depth+1)
		if err != nil {
			return nil, err
		}
		if !required[name] {
			// members absent from required may be omitted unless a default
			// fills them in
			if _, ok := skemapath.ExtractDefault(fn); !ok {
				fn = dsl.Optional(fn)
			}
		}
		b.Field(name, fn)
	}
	return b.Build()
}

func (imp *importer) importArray(doc map[string]any, path string, depth int) (skemapath.Node, error) {
	if raw, ok := doc["prefixItems"].([]any); ok {
		items := make([]skemapath.Node, 0, len(raw))
		for i, r := range raw {
			rm, ok := r.(map[string]any)
			if !ok {
				return nil, imp.invalid(fmt.Sprintf("%s/prefixItems/%d", path, i), "tuple position is not an object")
			}
			it, err := imp.importNode(rm, fmt.Sprintf("%s/prefixItems/%d", path, i), depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return dsl.Tuple(items...), nil
	}
	var elem skemapath.Node = dsl.Any()
	if im, ok := doc["items"].(map[string]any); ok {
		e, err := imp.importNode(im, path+"/items", depth+1)
		if err != nil {
			return nil, err
		}
		elem = e
	}
	a := dsl.Array(elem)
	if n, ok := intVal(doc["minItems"]); ok {
		a = a.Min(n)
	}
	if n, ok := intVal(doc["maxItems"]); ok {
		a = a.Max(n)
	}
	return a, nil
}

func (imp *importer) importUnion(raw []any, doc map[string]any, path string, depth int) (skemapath.Node, error) {
	members := make([]skemapath.Node, 0, len(raw))
	for i, r := range raw {
		rm, ok := r.(map[string]any)
		if !ok {
			return nil, imp.invalid(fmt.Sprintf("%s/oneOf/%d", path, i), "union member is not an object")
		}
		m, err := imp.importNode(rm, fmt.Sprintf("%s/oneOf/%d", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if disc, ok := doc["discriminator"].(map[string]any); ok {
		if key, _ := disc["propertyName"].(string); key != "" {
			u := dsl.DiscriminatedUnion(key, members...)
			if err := u.Validate(); err != nil {
				return nil, err
			}
			return u, nil
		}
	}
	return dsl.Union(members...), nil
}

func (imp *importer) importRef(ref, path string, depth int) (skemapath.Node, error) {
	name := refName(ref)
	if name == "" {
		return nil, imp.invalid(path, "unsupported $ref: "+ref)
	}
	target, ok := imp.defs[name]
	if !ok {
		return nil, imp.invalid(path, "unresolved $ref: "+ref)
	}
	if n, done := imp.built[name]; done {
		return n, nil
	}
	if imp.resolving[name] {
		// self-referential definition; resolve lazily once the outer import
		// finishes so node identity stays stable for cycle detection
		return dsl.Lazy(func() skemapath.Node { return imp.built[name] }), nil
	}
	imp.resolving[name] = true
	defer delete(imp.resolving, name)
	n, err := imp.importNode(target, path, depth+1)
	if err != nil {
		return nil, err
	}
	imp.built[name] = n
	return n, nil
}

func refName(ref string) string {
	for _, p := range []string{"#/$defs/", "#/definitions/", "#/components/schemas/"} {
		if strings.HasPrefix(ref, p) {
			rest := strings.TrimPrefix(ref, p)
			if rest != "" && !strings.Contains(rest, "/") {
				return rest
			}
		}
	}
	return ""
}

func (imp *importer) invalid(path, hint string) error {
	return skemapath.Issues{{Path: pointerOrRoot(path), Code: skemapath.CodeInvalidDescriptor, Message: i18n.T(skemapath.CodeInvalidDescriptor, nil), Hint: hint}}
}

func importString(doc map[string]any) skemapath.Node {
	s := dsl.String()
	if n, ok := intVal(doc["minLength"]); ok {
		s = s.Min(n)
	}
	if n, ok := intVal(doc["maxLength"]); ok {
		s = s.Max(n)
	}
	if p, ok := doc["pattern"].(string); ok && p != "" {
		s = s.Pattern(p)
	}
	if f, ok := doc["format"].(string); ok && f != "" {
		s = s.Format(f)
	}
	return s
}

func importNumber(doc map[string]any, integer bool) skemapath.Node {
	n := dsl.Number()
	if integer {
		n = n.Int()
	}
	if v, ok := floatVal(doc["minimum"]); ok {
		n = n.Gte(v)
	}
	if v, ok := floatVal(doc["maximum"]); ok {
		n = n.Lte(v)
	}
	if v, ok := floatVal(doc["exclusiveMinimum"]); ok {
		n = n.Gt(v)
	}
	if v, ok := floatVal(doc["exclusiveMaximum"]); ok {
		n = n.Lt(v)
	}
	if v, ok := floatVal(doc["multipleOf"]); ok {
		n = n.MultipleOf(v)
	}
	return n
}

func withMetaFromDoc(n skemapath.Node, doc map[string]any) skemapath.Node {
	title, _ := doc["title"].(string)
	desc, _ := doc["description"].(string)
	if title == "" && desc == "" {
		return n
	}
	a, ok := n.(skemapath.Annotated)
	if !ok {
		return n
	}
	return a.WithMeta(skemapath.Meta{Title: title, Description: desc})
}

func requiredSet(doc map[string]any) map[string]bool {
	out := map[string]bool{}
	if req, ok := doc["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				out[s] = true
			}
		}
	}
	return out
}

func intVal(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}

func floatVal(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func pointerOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
