// Package bind translates Object values from package tree into Go
// structs through a registry of named field bindings.
//
// # Bindings
//
// A [Binder] for a struct type T holds bindings from member names to
// fields of T. Bindings are built with typed constructors that take a
// function returning the field's address, so no reflection is involved:
//
//	type Config struct {
//		Count int
//		Label string
//		Ports [4]uint16
//		Tags  []string
//	}
//
//	b := bind.New[Config]().
//		AddMember("count", bind.Int(func(c *Config) *int { return &c.Count })).
//		AddMember("label", bind.String(func(c *Config) *string { return &c.Label })).
//		AddArray("ports", bind.IntArray(func(c *Config) []uint16 { return c.Ports[:] }), 4).
//		AddSequence("tags", bind.StringSeq(func(c *Config) *[]string { return &c.Tags }))
//
// Each binding belongs to a [Category]: Int, Bool, Float or String. Every
// integer kind of tree value is in the Int category and Double values are
// in the Float category. A name may be bound once per category and a
// later binding of the same name and category replaces the earlier one.
//
// # Translation
//
// [Binder.Translate] walks the members of an Object value in key order.
// A scalar member is written through the binding registered under its
// key in its own category; members with no such binding are skipped.
// Null and Object members are always skipped. The return value is the
// number of members written.
//
// An Array member is written through every array or sequence binding
// registered under its key. Fixed array bindings write element i into
// slot i, never past the binding's capacity or the field's length, and
// leave slots whose element is of another category unchanged. Sequence
// bindings replace the field with the elements of matching category.
// Each such binding counts as one match.
//
// [ScalarOnly] turns off Array members and [Coerce] allows numeric and
// boolean members to fall back to a binding of another category when the
// value converts.
//
// Setting SERIAL_DEBUG_BIND=true in the environment logs skipped members
// and coercions to stderr.
package bind
