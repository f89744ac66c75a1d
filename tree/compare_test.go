package tree

import (
	"math"
	"testing"
)

func obj(kvs ...any) *Value {
	res := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.SetMember(kvs[i].(string), kvs[i+1].(*Value))
	}
	return res
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Kind order: Null < Bool < Int32 < UInt32 < Int64 < UInt64 < Double < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Int32", FromBool(true), FromInt(0), -1},
		{"Int32 < UInt32", FromInt(100), FromUint(1), -1},
		{"UInt32 < Int64", FromUint(100), FromInt64(1), -1},
		{"Int64 < UInt64", FromInt64(100), FromUint64(1), -1},
		{"UInt64 < Double", FromUint64(100), FromDouble(1), -1},
		{"Double < String", FromDouble(100), FromString(""), -1},
		{"String < Array", FromString("z"), NewArray(), -1},
		{"Array < Object", NewArray(FromInt(1)), NewObject(), -1},

		{"Null == Null", Null(), Null(), 0},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// no overflow at the extremes
		{"MinInt32 < MaxInt32", FromInt(math.MinInt32), FromInt(math.MaxInt32), -1},
		{"MinInt64 < MaxInt64", FromInt64(math.MinInt64), FromInt64(math.MaxInt64), -1},
		{"UInt64 max > 0", FromUint64(math.MaxUint64), FromUint64(0), 1},
		{"Double", FromDouble(-0.5), FromDouble(0.25), -1},
		{"NaN < number", FromDouble(math.NaN()), FromDouble(math.Inf(-1)), -1},

		{"String < String", FromString("a"), FromString("b"), -1},
		{"String prefix", FromString("ab"), FromString("abc"), -1},

		{"Empty Array == Empty Array", NewArray(), NewArray(), 0},
		{"Short Array < Long Array", NewArray(FromInt(1)), NewArray(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", NewArray(FromInt(1)), NewArray(FromInt(2)), -1},

		{"Empty Object == Empty Object", NewObject(), NewObject(), 0},
		{"Short Object < Long Object",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)),
			-1},
		{"Object Key Comparison", obj("a", FromInt(1)), obj("b", FromInt(1)), -1},
		{"Object Value Comparison", obj("a", FromInt(1)), obj("a", FromInt(2)), -1},
		{"Object insertion order ignored",
			obj("b", FromInt(2), "a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			checkDerived(t, tt.a, tt.b, tt.expected)
		})
	}
}

func checkDerived(t *testing.T, a, b *Value, c int) {
	t.Helper()
	if a.Equal(b) != (c == 0) {
		t.Errorf("Equal() = %v for compare %d", a.Equal(b), c)
	}
	if a.Less(b) != (c < 0) {
		t.Errorf("Less() = %v for compare %d", a.Less(b), c)
	}
	if a.LessEqual(b) != (c <= 0) {
		t.Errorf("LessEqual() = %v for compare %d", a.LessEqual(b), c)
	}
	if a.Greater(b) != (c > 0) {
		t.Errorf("Greater() = %v for compare %d", a.Greater(b), c)
	}
	if a.GreaterEqual(b) != (c >= 0) {
		t.Errorf("GreaterEqual() = %v for compare %d", a.GreaterEqual(b), c)
	}
}

func TestCompareReflexive(t *testing.T) {
	values := []*Value{
		Null(),
		FromBool(true),
		FromInt(-7),
		FromUint(7),
		FromInt64(math.MinInt64),
		FromUint64(math.MaxUint64),
		FromDouble(math.NaN()),
		FromString("s"),
		NewArray(FromInt(1), NewArray()),
		obj("k", NewArray(FromString("v"))),
	}
	for _, v := range values {
		if got := v.Compare(v); got != 0 {
			t.Errorf("%v: Compare(self) = %d", v.Kind(), got)
		}
		if got := v.Compare(v.Clone()); got != 0 {
			t.Errorf("%v: Compare(clone) = %d", v.Kind(), got)
		}
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 || Compare(nil, Null()) != -1 || Compare(Null(), nil) != 1 {
		t.Errorf("nil ordering wrong")
	}
}
