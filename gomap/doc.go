// Package gomap converts between tree values and generic Go values, and
// between tree values and YAML or JSON documents.
//
// # Usage
//
//	// Decode a document into a tree
//	v, err := gomap.FromYAML([]byte("count: 5\nlabel: hi\n"))
//
//	// Convert values produced by encoding/json or another decoder
//	v, err = gomap.FromAny(map[string]any{"count": 5})
//
//	// And back
//	x := gomap.ToAny(v)
//	d, err := gomap.ToYAML(v)
//
// Integers are stored in the narrowest of Int32, UInt32, Int64 and UInt64
// that holds them unless [WideInts] is given. Object members come out in
// key order.
//
// # Related Packages
//
//   - github.com/signadot/go-serial/tree - the value tree
//   - github.com/signadot/go-serial/bind - translating trees into structs
package gomap
