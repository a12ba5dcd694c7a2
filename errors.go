package skemapath

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateKey         = "duplicate_key"
	CodeEmptyUnion           = "empty_union"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeUnsupportedType      = "unsupported_type"
	CodeInvalidDescriptor    = "invalid_descriptor"
	CodeParseError           = "parse_error"
)

// Issue represents a single construction or import error.
type Issue struct {
	Path    string // JSON Pointer into the builder/descriptor (for example: /properties/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending values, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of errors that implements error. Introspection
// lookups never produce Issues; only schema construction and descriptor
// import do.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_key at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
