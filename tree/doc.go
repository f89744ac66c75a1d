// Package tree provides the in-memory document model for semi-structured
// data.
//
// # Overview
//
// A document is a tree of *Value nodes. Parsers for JSON, YAML and similar
// formats produce trees; consumers walk them or hand them to the bind
// package to populate Go structs. The package defines no text format of
// its own.
//
// # Kinds
//
// Each Value holds exactly one kind:
//
//   - NullKind: no value
//   - BoolKind: boolean
//   - Int32Kind, UInt32Kind, Int64Kind, UInt64Kind: integers
//   - DoubleKind: 64-bit IEEE float
//   - StringKind: text
//   - ArrayKind: ordered children
//   - ObjectKind: children keyed by unique strings
//
// Kinds are ordered as listed; Compare uses that order for values of
// different kinds.
//
// # Creating Values
//
//	n := tree.From(int32(5))   // Int32
//	s := tree.FromString("hi") // String
//	obj := tree.NewObject().
//	    SetMember("count", tree.FromInt(5)).
//	    SetMember("label", tree.FromString("hi"))
//	arr := tree.NewArray(tree.FromBool(true), tree.Null())
//
// Setters (SetInt, SetString, SetObject, ...) change a Value in place and
// release whatever it held before.
//
// # Tree Constraints
//
// ## Ownership
//
// A child belongs to exactly one parent. Append and SetMember take
// ownership of the child they are given; attaching a child that already
// has a parent, or attaching a value below itself, is a usage error.
// Clone makes an independent deep copy and is the only operation that
// copies a subtree.
//
// ## Objects
//
// Object members are kept sorted by key (byte-wise), not in insertion
// order. Setting an existing key replaces its member.
//
// # Reading Values
//
// The Is family tests the kind or, for IsInt, IsUint, IsInt64 and
// IsUint64, whether the stored number is within range of the named
// integer type. IsConvertibleTo combines these into a single predicate
// callers can check before using an As accessor.
//
// The As accessors cast numbers with Go conversion semantics: they never
// saturate and never fail on overflow.
//
// # Usage Errors
//
// Asking a Value for something its kind does not have (AsString on a
// number, At on an Object, Member with a missing key) is a programming
// error. Such calls panic with a *UsageError wrapping one of the Err
// sentinels. Absence is reported without panicking by HasMember and
// Lookup. Recover turns a usage panic back into an error.
//
// # Concurrency
//
// A tree must not be mutated concurrently with any other access. Read-only
// use from several goroutines is safe.
package tree
