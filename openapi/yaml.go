package openapi

import (
	"bytes"
	"errors"
	"io"

	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/i18n"
	"gopkg.in/yaml.v3"
)

// ImportYAML decodes the first YAML document in data and imports it like
// Import. YAML allows non-string mapping keys; only string-keyed entries
// survive normalization.
func ImportYAML(data []byte, opts Options) (skemapath.Node, Diag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &simpleDiag{}, skemapath.Issues{{Path: "/", Code: skemapath.CodeParseError, Message: i18n.T(skemapath.CodeParseError, nil), Hint: "empty YAML document"}}
		}
		return nil, &simpleDiag{}, skemapath.Issues{{Path: "/", Code: skemapath.CodeParseError, Message: i18n.T(skemapath.CodeParseError, nil), Cause: err}}
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return nil, &simpleDiag{}, skemapath.Issues{{Path: "/", Code: skemapath.CodeInvalidDescriptor, Message: i18n.T(skemapath.CodeInvalidDescriptor, nil), Hint: "root is not a mapping"}}
	}
	return Import(m, opts)
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
