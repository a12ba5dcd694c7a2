package skemapath

// Package skemapath provides:
//
// - Schema-graph introspection over capability interfaces (Node, Wrapper, Object, Union, ...)
// - Wrapper unwrapping and primitive-type resolution (Unwrap/UnwrapUnionFirst/ResolvePrimitive)
// - Discriminated-variant extraction and default-value derivation (ExtractVariant/CollectDefaults)
// - Dot-path enumeration with type filtering plus a runtime navigator (Paths/ExtractField)
// - Constraint introspection and requirement analysis (Checks/RequiresInput)
//
// Design policy:
// - Keep only introspection APIs in the root package; node construction lives under dsl/.
// - Place descriptor import under openapi/, export types under jsonschema/, and the CLI under cmd/skemapath.
// - Lookups report missing results through comma-ok returns, never through errors or panics.
//
// Typical usage:
//
//  s := buildSchema()
//  paths := skemapath.Paths(s, skemapath.PathsOpt{Filter: dsl.String()})
//  node, ok := skemapath.ExtractField(s, "items.0.label")
//  defaults := skemapath.CollectDefaults(s)
//
//  checks := skemapath.Checks(node)
//
