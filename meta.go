package skemapath

// Meta is descriptive, non-validating annotation carried by schema nodes:
// display strings and the translation key used by message catalogs.
type Meta struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	TranslationKey string `json:"translationKey,omitempty"`
}

// ExtendWithMeta applies transform to n and carries n's annotation over to
// the result, so a rebuilt node keeps its translation key and display
// strings. Metadata already present on the transformed node wins field by
// field; blank fields are filled from the original. Nodes that cannot carry
// annotation pass through untouched.
func ExtendWithMeta(n Node, transform func(Node) Node) Node {
	if n == nil {
		return nil
	}
	if transform == nil {
		return n
	}
	out := transform(n)
	if out == nil {
		return nil
	}
	src, ok := n.(Annotated)
	if !ok || src.Meta() == nil {
		return out
	}
	dst, ok := out.(Annotated)
	if !ok {
		return out
	}
	merged := *src.Meta()
	if cur := dst.Meta(); cur != nil {
		if cur.Title != "" {
			merged.Title = cur.Title
		}
		if cur.Description != "" {
			merged.Description = cur.Description
		}
		if cur.TranslationKey != "" {
			merged.TranslationKey = cur.TranslationKey
		}
	}
	return dst.WithMeta(merged)
}
