// Package dsl provides the schema builders behind the skemapath
// introspection interfaces.
//
// Overview
//   - Builder API: declare object shapes with Object()/Field(...)/MustBuild(); field order is preserved and drives traversal order.
//   - Primitives: String()/Number()/Bool()/Time() with chainable checks (Min/Max/Pattern/Format, Gt/Lt/Int, After/Before).
//   - Collections: Array(elem) with Min/Max, Tuple(items...), Map(elem).
//   - Unions: Union(members...) for untagged unions, DiscriminatedUnion(key, variants...) for tagged ones, Enum(values...) for literal sets.
//   - Wrappers: Optional/Nullable/Default/DefaultFunc/Transform/Lazy layer over any node and unwrap via skemapath.Wrapper.
//   - Metadata: every node carries optional Meta via WithMeta; copies are returned, nodes are never mutated after construction.
//
// Entry points
//   - Object(): create an object builder; chain Field then MustBuild()/Build().
//   - String()/Number()/Bool()/Time()/Literal(v): primitive nodes, chain checks before first use.
//   - Array(elem)/Tuple(items...)/Map(elem): container nodes.
//   - Union/DiscriminatedUnion/Enum: union nodes; Validate() reports declaration problems.
//   - Optional/Nullable/Default/Transform/Lazy: wrapper nodes; Lazy enables self-referential schemas.
//
// File layout (roles)
//   - primitives.go: string/number/bool/time/literal/any/null/undefined nodes and their check chains.
//   - object.go: ObjectBuilder and the object node.
//   - collections.go: array/tuple/map nodes.
//   - union.go: untagged and discriminated unions, Enum.
//   - wrappers.go: optional/nullable/default/transform/lazy layers.
//
// Design guidelines
//   - Builders mutate until Build; built nodes are read-only so they can be shared across goroutines.
//   - Node identity is pointer identity; the traversal cycle guard depends on it, so constructors always return pointers.
package dsl
