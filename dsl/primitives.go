package dsl

import (
	"time"

	skemapath "github.com/reoring/skemapath"
)

// annotation carries optional descriptive metadata for a node. Embedded by
// every schema type.
type annotation struct {
	meta *skemapath.Meta
}

func (a annotation) Meta() *skemapath.Meta { return a.meta }

// StringSchema is a string node with chainable checks.
type StringSchema struct {
	annotation
	checks []skemapath.Check
}

// String returns a string schema.
func String() *StringSchema { return &StringSchema{} }

func (*StringSchema) Kind() skemapath.Kind { return skemapath.KindString }

func (s *StringSchema) Checks() []skemapath.Check {
	return append([]skemapath.Check(nil), s.checks...)
}

// Min requires at least n characters.
func (s *StringSchema) Min(n int) *StringSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckMinLength, Length: &n})
	return s
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int) *StringSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckMaxLength, Length: &n})
	return s
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int) *StringSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckLength, Length: &n})
	return s
}

// Pattern requires the value to match the regular expression.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckPattern, Pattern: expr})
	return s
}

// Format attaches a named format such as skemapath.FormatEmail.
func (s *StringSchema) Format(name string) *StringSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckFormat, Format: name})
	return s
}

// Email is shorthand for Format(skemapath.FormatEmail).
func (s *StringSchema) Email() *StringSchema { return s.Format(skemapath.FormatEmail) }

// UUID is shorthand for Format(skemapath.FormatUUID).
func (s *StringSchema) UUID() *StringSchema { return s.Format(skemapath.FormatUUID) }

// URL is shorthand for Format(skemapath.FormatURL).
func (s *StringSchema) URL() *StringSchema { return s.Format(skemapath.FormatURL) }

// NonEmpty is shorthand for Min(1).
func (s *StringSchema) NonEmpty() *StringSchema { return s.Min(1) }

func (s *StringSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// NumberSchema is a numeric node with chainable checks.
type NumberSchema struct {
	annotation
	checks []skemapath.Check
}

// Number returns a number schema.
func Number() *NumberSchema { return &NumberSchema{} }

func (*NumberSchema) Kind() skemapath.Kind { return skemapath.KindNumber }

func (s *NumberSchema) Checks() []skemapath.Check {
	return append([]skemapath.Check(nil), s.checks...)
}

// Gt requires the value to be strictly greater than v.
func (s *NumberSchema) Gt(v float64) *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckGreaterThan, Bound: &v})
	return s
}

// Gte requires the value to be greater than or equal to v.
func (s *NumberSchema) Gte(v float64) *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckGreaterThan, Bound: &v, Inclusive: true})
	return s
}

// Lt requires the value to be strictly less than v.
func (s *NumberSchema) Lt(v float64) *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckLessThan, Bound: &v})
	return s
}

// Lte requires the value to be less than or equal to v.
func (s *NumberSchema) Lte(v float64) *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckLessThan, Bound: &v, Inclusive: true})
	return s
}

// MultipleOf requires the value to be a multiple of v.
func (s *NumberSchema) MultipleOf(v float64) *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckMultipleOf, Bound: &v})
	return s
}

// Int requires an integral value.
func (s *NumberSchema) Int() *NumberSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckInteger})
	return s
}

// Integer returns a number schema constrained to integral values.
func Integer() *NumberSchema { return Number().Int() }

func (s *NumberSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// BoolSchema is a boolean node.
type BoolSchema struct {
	annotation
}

// Bool returns a boolean schema.
func Bool() *BoolSchema { return &BoolSchema{} }

func (*BoolSchema) Kind() skemapath.Kind { return skemapath.KindBool }

func (s *BoolSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// TimeSchema is a timestamp node with chainable bounds.
type TimeSchema struct {
	annotation
	checks []skemapath.Check
}

// Time returns a timestamp schema.
func Time() *TimeSchema { return &TimeSchema{} }

func (*TimeSchema) Kind() skemapath.Kind { return skemapath.KindTime }

func (s *TimeSchema) Checks() []skemapath.Check {
	return append([]skemapath.Check(nil), s.checks...)
}

// After requires the value to be after t.
func (s *TimeSchema) After(t time.Time) *TimeSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckAfter, Time: &t})
	return s
}

// Before requires the value to be before t.
func (s *TimeSchema) Before(t time.Time) *TimeSchema {
	s.checks = append(s.checks, skemapath.Check{Kind: skemapath.CheckBefore, Time: &t})
	return s
}

func (s *TimeSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// LiteralSchema accepts exactly one value.
type LiteralSchema struct {
	annotation
	value any
}

// Literal returns a schema accepting exactly v. Typical discriminator
// member: Literal("circle").
func Literal(v any) *LiteralSchema { return &LiteralSchema{value: v} }

func (*LiteralSchema) Kind() skemapath.Kind { return skemapath.KindLiteral }

func (s *LiteralSchema) LiteralValue() any { return s.value }

func (s *LiteralSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// AnySchema accepts every value.
type AnySchema struct {
	annotation
}

// Any returns a schema accepting every value.
func Any() *AnySchema { return &AnySchema{} }

func (*AnySchema) Kind() skemapath.Kind { return skemapath.KindAny }

func (s *AnySchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// NullSchema accepts only null.
type NullSchema struct {
	annotation
}

// Null returns a schema accepting only null.
func Null() *NullSchema { return &NullSchema{} }

func (*NullSchema) Kind() skemapath.Kind { return skemapath.KindNull }

func (s *NullSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}

// UndefinedSchema accepts only an absent value.
type UndefinedSchema struct {
	annotation
}

// Undefined returns a schema accepting only absence. Mostly useful as a
// union member.
func Undefined() *UndefinedSchema { return &UndefinedSchema{} }

func (*UndefinedSchema) Kind() skemapath.Kind { return skemapath.KindUndefined }

func (s *UndefinedSchema) WithMeta(m skemapath.Meta) skemapath.Node {
	c := *s
	c.meta = &m
	return &c
}
