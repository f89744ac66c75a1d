package bind

import (
	"github.com/signadot/go-serial/tree"
)

// Category groups value kinds the way bindings see them: every integer
// kind is IntCategory and DoubleKind is FloatCategory.
type Category int

const (
	IntCategory Category = iota
	BoolCategory
	FloatCategory
	StringCategory

	numCategories = 4
)

func (c Category) String() string {
	switch c {
	case IntCategory:
		return "int"
	case BoolCategory:
		return "bool"
	case FloatCategory:
		return "float"
	case StringCategory:
		return "string"
	}
	return "<unknown category>"
}

// CategoryOf returns the binding category of a value's kind. It reports
// false for Null, Array and Object values.
func CategoryOf(v *tree.Value) (Category, bool) {
	switch k := v.Kind(); {
	case k.IsIntegral():
		return IntCategory, true
	case k == tree.BoolKind:
		return BoolCategory, true
	case k == tree.DoubleKind:
		return FloatCategory, true
	case k == tree.StringKind:
		return StringCategory, true
	}
	return 0, false
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Floating interface {
	~float32 | ~float64
}

// Scalar is a write handle on one field of T.
type Scalar[T any] struct {
	cat Category
	set func(*T, *tree.Value)
}

func (s Scalar[T]) Category() Category { return s.cat }

// Bool binds a boolean field. field must return the address of the
// field within its argument:
//
//	bind.Bool(func(c *Config) *bool { return &c.Enabled })
func Bool[T any, B ~bool](field func(*T) *B) Scalar[T] {
	return Scalar[T]{
		cat: BoolCategory,
		set: func(p *T, v *tree.Value) { *field(p) = B(v.AsBool()) },
	}
}

// Int binds an integer field of any width. Values that do not fit are
// truncated by Go conversion rules.
func Int[T any, I Integer](field func(*T) *I) Scalar[T] {
	return Scalar[T]{
		cat: IntCategory,
		set: func(p *T, v *tree.Value) { *field(p) = toInt[I](v) },
	}
}

func Float[T any, F Floating](field func(*T) *F) Scalar[T] {
	return Scalar[T]{
		cat: FloatCategory,
		set: func(p *T, v *tree.Value) { *field(p) = F(v.AsDouble()) },
	}
}

func String[T any, S ~string](field func(*T) *S) Scalar[T] {
	return Scalar[T]{
		cat: StringCategory,
		set: func(p *T, v *tree.Value) { *field(p) = S(v.AsString()) },
	}
}

func toInt[I Integer](v *tree.Value) I {
	switch v.Kind() {
	case tree.UInt32Kind, tree.UInt64Kind:
		return I(v.AsUint64())
	}
	return I(v.AsInt64())
}

// Elems is a write handle on the elements of a fixed size array field of
// T, seen through a slice of the array.
type Elems[T any] struct {
	cat Category
	len func(*T) int
	set func(p *T, i int, v *tree.Value)
}

func (e Elems[T]) Category() Category { return e.cat }

// IntArray binds a fixed size integer array field:
//
//	bind.IntArray(func(c *Config) []int { return c.Ports[:] })
func IntArray[T any, I Integer](field func(*T) []I) Elems[T] {
	return Elems[T]{
		cat: IntCategory,
		len: func(p *T) int { return len(field(p)) },
		set: func(p *T, i int, v *tree.Value) { field(p)[i] = toInt[I](v) },
	}
}

func BoolArray[T any, B ~bool](field func(*T) []B) Elems[T] {
	return Elems[T]{
		cat: BoolCategory,
		len: func(p *T) int { return len(field(p)) },
		set: func(p *T, i int, v *tree.Value) { field(p)[i] = B(v.AsBool()) },
	}
}

func FloatArray[T any, F Floating](field func(*T) []F) Elems[T] {
	return Elems[T]{
		cat: FloatCategory,
		len: func(p *T) int { return len(field(p)) },
		set: func(p *T, i int, v *tree.Value) { field(p)[i] = F(v.AsDouble()) },
	}
}

func StringArray[T any, S ~string](field func(*T) []S) Elems[T] {
	return Elems[T]{
		cat: StringCategory,
		len: func(p *T) int { return len(field(p)) },
		set: func(p *T, i int, v *tree.Value) { field(p)[i] = S(v.AsString()) },
	}
}

// Seq is a write handle on a slice field of T whose length follows the
// document.
type Seq[T any] struct {
	cat   Category
	reset func(p *T, capacity int)
	add   func(p *T, v *tree.Value)
}

func (s Seq[T]) Category() Category { return s.cat }

// IntSeq binds an integer slice field:
//
//	bind.IntSeq(func(c *Config) *[]int { return &c.Retries })
func IntSeq[T any, I Integer](field func(*T) *[]I) Seq[T] {
	return Seq[T]{
		cat:   IntCategory,
		reset: func(p *T, n int) { *field(p) = make([]I, 0, n) },
		add: func(p *T, v *tree.Value) {
			s := field(p)
			*s = append(*s, toInt[I](v))
		},
	}
}

func BoolSeq[T any, B ~bool](field func(*T) *[]B) Seq[T] {
	return Seq[T]{
		cat:   BoolCategory,
		reset: func(p *T, n int) { *field(p) = make([]B, 0, n) },
		add: func(p *T, v *tree.Value) {
			s := field(p)
			*s = append(*s, B(v.AsBool()))
		},
	}
}

func FloatSeq[T any, F Floating](field func(*T) *[]F) Seq[T] {
	return Seq[T]{
		cat:   FloatCategory,
		reset: func(p *T, n int) { *field(p) = make([]F, 0, n) },
		add: func(p *T, v *tree.Value) {
			s := field(p)
			*s = append(*s, F(v.AsDouble()))
		},
	}
}

func StringSeq[T any, S ~string](field func(*T) *[]S) Seq[T] {
	return Seq[T]{
		cat:   StringCategory,
		reset: func(p *T, n int) { *field(p) = make([]S, 0, n) },
		add: func(p *T, v *tree.Value) {
			s := field(p)
			*s = append(*s, S(v.AsString()))
		},
	}
}
