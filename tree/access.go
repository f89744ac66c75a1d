package tree

import (
	"iter"
	"slices"
	"strconv"
)

// The As accessors cast whatever scalar is stored: false/true read as
// 0/1, Null reads as zero, and numbers convert with Go's conversion
// rules, truncating or wrapping without error. They panic with
// ErrWrongKind on a String, Array or Object (AsString is the reverse:
// it accepts only a String).

func (v *Value) AsBool() bool {
	switch v.kind {
	case BoolKind:
		return v.b
	case NullKind:
		return false
	}
	if v.IsNumeric() {
		return v.AsDouble() != 0
	}
	wrongKind("AsBool", v.kind, BoolKind)
	return false
}

func (v *Value) AsInt() int32 {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return int32(v.i)
	case UInt32Kind, UInt64Kind:
		return int32(v.u)
	case DoubleKind:
		return int32(v.f)
	case BoolKind:
		return int32(b2i(v.b))
	case NullKind:
		return 0
	}
	wrongKind("AsInt", v.kind, Int32Kind)
	return 0
}

func (v *Value) AsUint() uint32 {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return uint32(v.i)
	case UInt32Kind, UInt64Kind:
		return uint32(v.u)
	case DoubleKind:
		return uint32(v.f)
	case BoolKind:
		return uint32(b2i(v.b))
	case NullKind:
		return 0
	}
	wrongKind("AsUint", v.kind, UInt32Kind)
	return 0
}

func (v *Value) AsInt64() int64 {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return v.i
	case UInt32Kind, UInt64Kind:
		return int64(v.u)
	case DoubleKind:
		return int64(v.f)
	case BoolKind:
		return b2i(v.b)
	case NullKind:
		return 0
	}
	wrongKind("AsInt64", v.kind, Int64Kind)
	return 0
}

func (v *Value) AsUint64() uint64 {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return uint64(v.i)
	case UInt32Kind, UInt64Kind:
		return v.u
	case DoubleKind:
		return uint64(v.f)
	case BoolKind:
		return uint64(b2i(v.b))
	case NullKind:
		return 0
	}
	wrongKind("AsUint64", v.kind, UInt64Kind)
	return 0
}

func (v *Value) AsDouble() float64 {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return float64(v.i)
	case UInt32Kind, UInt64Kind:
		return float64(v.u)
	case DoubleKind:
		return v.f
	case BoolKind:
		return float64(b2i(v.b))
	case NullKind:
		return 0
	}
	wrongKind("AsDouble", v.kind, DoubleKind)
	return 0
}

func (v *Value) AsString() string {
	if v.kind != StringKind {
		wrongKind("AsString", v.kind, StringKind)
	}
	return v.s
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// At returns the child at index i of an Array.
func (v *Value) At(i int) *Value {
	if v.kind != ArrayKind {
		wrongKind("At", v.kind, ArrayKind)
	}
	if i < 0 || i >= len(v.elems) {
		usage("At", v.kind, ErrOutOfRange, strconv.Itoa(i)+" not in [0, "+strconv.Itoa(len(v.elems))+")")
	}
	return v.elems[i]
}

// Member returns the child stored under key in an Object. A missing key
// is a usage error; see Lookup and HasMember for probing.
func (v *Value) Member(key string) *Value {
	if v.kind != ObjectKind {
		wrongKind("Member", v.kind, ObjectKind)
	}
	i, found := slices.BinarySearch(v.keys, key)
	if !found {
		usage("Member", v.kind, ErrNoMember, strconv.Quote(key))
	}
	return v.vals[i]
}

// Lookup returns the child stored under key. It reports false for a
// missing key and for any v that is not an Object.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	i, found := slices.BinarySearch(v.keys, key)
	if !found {
		return nil, false
	}
	return v.vals[i], true
}

func (v *Value) HasMember(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Keys returns the keys of an Object in sorted order.
func (v *Value) Keys() []string {
	if v.kind != ObjectKind {
		wrongKind("Keys", v.kind, ObjectKind)
	}
	return slices.Clone(v.keys)
}

// ForEachArray calls fn with each element of an Array, in order.
// fn must not add or remove elements of v.
func (v *Value) ForEachArray(fn func(child *Value)) {
	if v.kind != ArrayKind {
		wrongKind("ForEachArray", v.kind, ArrayKind)
	}
	for _, c := range v.elems {
		fn(c)
	}
}

// ForEachObject calls fn with each member of an Object in key order.
// fn must not add or remove members of v.
func (v *Value) ForEachObject(fn func(key string, child *Value)) {
	if v.kind != ObjectKind {
		wrongKind("ForEachObject", v.kind, ObjectKind)
	}
	for i, k := range v.keys {
		fn(k, v.vals[i])
	}
}

// Elements returns an iterator over the index and element pairs of an
// Array. The kind is checked when Elements is called, not when the
// iterator runs.
func (v *Value) Elements() iter.Seq2[int, *Value] {
	if v.kind != ArrayKind {
		wrongKind("Elements", v.kind, ArrayKind)
	}
	return func(yield func(int, *Value) bool) {
		for i, c := range v.elems {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Members returns an iterator over the key and child pairs of an Object,
// in key order.
func (v *Value) Members() iter.Seq2[string, *Value] {
	if v.kind != ObjectKind {
		wrongKind("Members", v.kind, ObjectKind)
	}
	return func(yield func(string, *Value) bool) {
		for i, k := range v.keys {
			if !yield(k, v.vals[i]) {
				return
			}
		}
	}
}
