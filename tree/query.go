package tree

import "math"

const (
	// 2^63 and 2^64 are exact as float64; MaxInt64 and MaxUint64 are not.
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

func (v *Value) IsNull() bool { return v.kind == NullKind }
func (v *Value) IsBool() bool { return v.kind == BoolKind }
func (v *Value) IsString() bool { return v.kind == StringKind }
func (v *Value) IsArray() bool { return v.kind == ArrayKind }
func (v *Value) IsObject() bool { return v.kind == ObjectKind }

// IsIntegral reports whether v holds one of the four integer kinds.
func (v *Value) IsIntegral() bool {
	return v.kind.IsIntegral()
}

// IsNumeric reports whether v holds an integer kind or a Double.
func (v *Value) IsNumeric() bool {
	return v.kind.IsIntegral() || v.kind == DoubleKind
}

// IsDouble reports whether v can be read as a double: any numeric kind
// qualifies since every integer has a double representation.
func (v *Value) IsDouble() bool {
	return v.IsNumeric()
}

// IsInt reports whether the stored number lies within the int32 range.
//
// For a Double only the range is checked: 2.5 reports true. Use
// HoldsExact to also require an integral value.
func (v *Value) IsInt() bool {
	switch v.kind {
	case Int32Kind:
		return true
	case UInt32Kind, UInt64Kind:
		return v.u <= math.MaxInt32
	case Int64Kind:
		return v.i >= math.MinInt32 && v.i <= math.MaxInt32
	case DoubleKind:
		return v.f >= math.MinInt32 && v.f <= math.MaxInt32
	}
	return false
}

// IsUint reports whether the stored number lies within the uint32 range.
// Doubles are range checked only, as for IsInt.
func (v *Value) IsUint() bool {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return v.i >= 0 && v.i <= math.MaxUint32
	case UInt32Kind:
		return true
	case UInt64Kind:
		return v.u <= math.MaxUint32
	case DoubleKind:
		return v.f >= 0 && v.f <= math.MaxUint32
	}
	return false
}

// IsInt64 reports whether the stored number lies within the int64 range.
// Doubles are range checked only, as for IsInt.
func (v *Value) IsInt64() bool {
	switch v.kind {
	case Int32Kind, UInt32Kind, Int64Kind:
		return true
	case UInt64Kind:
		return v.u <= math.MaxInt64
	case DoubleKind:
		return v.f >= -twoTo63 && v.f < twoTo63
	}
	return false
}

// IsUint64 reports whether the stored number lies within the uint64
// range. Doubles are range checked only, as for IsInt.
func (v *Value) IsUint64() bool {
	switch v.kind {
	case Int32Kind, Int64Kind:
		return v.i >= 0
	case UInt32Kind, UInt64Kind:
		return true
	case DoubleKind:
		return v.f >= 0 && v.f < twoTo64
	}
	return false
}

// HoldsExact reports whether v narrows to the integer kind k without any
// loss: in range and, for a Double, with no fractional part. For a
// non-integer k it reports whether v already has kind k.
func (v *Value) HoldsExact(k Kind) bool {
	var inRange bool
	switch k {
	case Int32Kind:
		inRange = v.IsInt()
	case UInt32Kind:
		inRange = v.IsUint()
	case Int64Kind:
		inRange = v.IsInt64()
	case UInt64Kind:
		inRange = v.IsUint64()
	default:
		return v.kind == k
	}
	if !inRange {
		return false
	}
	if v.kind == DoubleKind {
		return v.f == math.Trunc(v.f)
	}
	return true
}

// IsConvertibleTo reports whether the matching As accessor gives a
// meaningful result for target. It is advisory: the accessors do not
// consult it.
func (v *Value) IsConvertibleTo(target Kind) bool {
	if target == v.kind {
		return true
	}
	switch target {
	case NullKind:
		switch {
		case v.IsNumeric():
			return v.AsDouble() == 0
		case v.kind == BoolKind:
			return !v.b
		case v.kind == StringKind:
			return v.s == ""
		case v.kind == ArrayKind, v.kind == ObjectKind:
			return v.Size() == 0
		}
		return false
	case BoolKind:
		return v.IsNumeric() || v.kind == NullKind
	case Int32Kind:
		return v.IsInt() || v.kind == BoolKind || v.kind == NullKind
	case UInt32Kind:
		return v.IsUint() || v.kind == BoolKind || v.kind == NullKind
	case Int64Kind:
		return v.IsInt64() || v.kind == BoolKind || v.kind == NullKind
	case UInt64Kind:
		return v.IsUint64() || v.kind == BoolKind || v.kind == NullKind
	case DoubleKind:
		return v.IsDouble() || v.kind == BoolKind || v.kind == NullKind
	case StringKind:
		return v.IsNumeric() || v.kind == BoolKind || v.kind == NullKind
	case ArrayKind, ObjectKind:
		return v.kind == NullKind
	}
	return false
}
