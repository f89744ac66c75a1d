package tree

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// A nil value sorts before any other.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case Int32Kind, Int64Kind:
		return cmp.Compare(a.i, b.i)
	case UInt32Kind, UInt64Kind:
		return cmp.Compare(a.u, b.u)
	case DoubleKind:
		// cmp.Compare orders NaN first and equal to itself.
		return cmp.Compare(a.f, b.f)
	case StringKind:
		return strings.Compare(a.s, b.s)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	}
	return 0
}

func compareArrays(a, b *Value) int {
	lenA := len(a.elems)
	lenB := len(b.elems)
	for i := range min(lenA, lenB) {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects walks both objects in key order, comparing each key and
// then its value.
func compareObjects(a, b *Value) int {
	lenA := len(a.keys)
	lenB := len(b.keys)
	for i := range min(lenA, lenB) {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func (v *Value) Compare(o *Value) int { return Compare(v, o) }
func (v *Value) Equal(o *Value) bool { return Compare(v, o) == 0 }
func (v *Value) Less(o *Value) bool { return Compare(v, o) < 0 }
func (v *Value) LessEqual(o *Value) bool { return Compare(v, o) <= 0 }
func (v *Value) Greater(o *Value) bool { return Compare(v, o) > 0 }
func (v *Value) GreaterEqual(o *Value) bool { return Compare(v, o) >= 0 }
