package skemapath

import (
	"strconv"
	"time"

	"github.com/reoring/skemapath/i18n"
)

// CheckKind tags one declared validation constraint.
type CheckKind string

const (
	CheckMinLength   CheckKind = "min_length"
	CheckMaxLength   CheckKind = "max_length"
	CheckLength      CheckKind = "length"
	CheckPattern     CheckKind = "pattern"
	CheckFormat      CheckKind = "format"
	CheckGreaterThan CheckKind = "greater_than"
	CheckLessThan    CheckKind = "less_than"
	CheckMultipleOf  CheckKind = "multiple_of"
	CheckInteger     CheckKind = "integer"
	CheckMinItems    CheckKind = "min_items"
	CheckMaxItems    CheckKind = "max_items"
	CheckAfter       CheckKind = "after"
	CheckBefore      CheckKind = "before"
)

// Format names used by CheckFormat records.
const (
	FormatEmail = "email"
	FormatUUID  = "uuid"
	FormatURL   = "url"
)

// Check is one normalized constraint record attached to a primitive node.
// Payload fields are pointers so that an absent value stays distinguishable
// from a zero one.
type Check struct {
	Kind      CheckKind  `json:"kind"`
	Length    *int       `json:"length,omitempty"`  // length/size family
	Bound     *float64   `json:"bound,omitempty"`   // numeric bounds, multiple_of
	Inclusive bool       `json:"inclusive,omitempty"`
	Time      *time.Time `json:"time,omitempty"` // date bounds
	Format    string     `json:"format,omitempty"`
	Pattern   string     `json:"pattern,omitempty"`
}

// Describe renders the record as a human-readable description in the active
// i18n language. Inclusive numeric bounds use the at-least/at-most messages;
// exclusive ones keep the strict greater/less wording.
func (c Check) Describe() string {
	code := "check_" + string(c.Kind)
	if c.Inclusive {
		switch c.Kind {
		case CheckGreaterThan:
			code = "check_at_least"
		case CheckLessThan:
			code = "check_at_most"
		}
	}
	var data map[string]string
	switch {
	case c.Length != nil:
		data = map[string]string{"value": strconv.Itoa(*c.Length)}
	case c.Bound != nil:
		data = map[string]string{"value": strconv.FormatFloat(*c.Bound, 'f', -1, 64)}
	case c.Time != nil:
		data = map[string]string{"value": c.Time.Format(time.RFC3339)}
	case c.Pattern != "":
		data = map[string]string{"value": c.Pattern}
	case c.Format != "":
		data = map[string]string{"value": c.Format}
	}
	return i18n.T(code, data)
}

// Checks resolves the node to its primitive form and returns the constraint
// records declared on it, in declaration order. Kinds that cannot carry
// constraints (objects, bools, ...) yield an empty list.
func Checks(n Node) []Check {
	if n == nil {
		return nil
	}
	if c, ok := ResolvePrimitive(n).(Checked); ok {
		return c.Checks()
	}
	return nil
}
