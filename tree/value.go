package tree

import (
	"slices"
)

// Value is one node of a document tree.
//
// Exactly one payload field is meaningful at a time, selected by kind.
// Every setter that changes the kind resets the whole payload, so a
// stale string or child list never survives a kind change.
//
// Children are owned exclusively by their parent. A Value that already
// has a parent cannot be attached elsewhere; Detach it or Clone it first.
//
// The zero Value is a valid Null.
type Value struct {
	kind   Kind
	parent *Value

	b bool
	i int64  // Int32Kind, Int64Kind
	u uint64 // UInt32Kind, UInt64Kind
	f float64
	s string

	elems []*Value // ArrayKind

	// ObjectKind: keys sorted, vals[i] belongs to keys[i]
	keys []string
	vals []*Value
}

// Literal lists the Go types a Value can be built from directly, each
// mapping to exactly one Kind.
type Literal interface {
	bool | int32 | uint32 | int64 | uint64 | float64 | string
}

// New returns a Value of kind k holding that kind's default payload:
// false, zero, the empty string, or no children.
func New(k Kind) *Value {
	if k < NullKind || k > ObjectKind {
		usage("New", k, ErrWrongKind, "unknown kind")
	}
	return &Value{kind: k}
}

// From returns a Value whose kind is inferred from the type of x.
func From[L Literal](x L) *Value {
	switch x := any(x).(type) {
	case bool:
		return FromBool(x)
	case int32:
		return FromInt(x)
	case uint32:
		return FromUint(x)
	case int64:
		return FromInt64(x)
	case uint64:
		return FromUint64(x)
	case float64:
		return FromDouble(x)
	case string:
		return FromString(x)
	}
	panic("unreachable")
}

func Null() *Value {
	return &Value{kind: NullKind}
}

func FromBool(x bool) *Value {
	return &Value{kind: BoolKind, b: x}
}

func FromInt(x int32) *Value {
	return &Value{kind: Int32Kind, i: int64(x)}
}

func FromUint(x uint32) *Value {
	return &Value{kind: UInt32Kind, u: uint64(x)}
}

func FromInt64(x int64) *Value {
	return &Value{kind: Int64Kind, i: x}
}

func FromUint64(x uint64) *Value {
	return &Value{kind: UInt64Kind, u: x}
}

func FromDouble(x float64) *Value {
	return &Value{kind: DoubleKind, f: x}
}

func FromString(x string) *Value {
	return &Value{kind: StringKind, s: x}
}

// NewArray returns an Array owning children, in order.
func NewArray(children ...*Value) *Value {
	res := &Value{kind: ArrayKind}
	for _, c := range children {
		res.Append(c)
	}
	return res
}

func NewObject() *Value {
	return &Value{kind: ObjectKind}
}

// FromMap returns an Object owning the values of m under their keys.
func FromMap(m map[string]*Value) *Value {
	res := &Value{kind: ObjectKind}
	for k, c := range m {
		res.SetMember(k, c)
	}
	return res
}

func (v *Value) Kind() Kind {
	return v.kind
}

// Parent returns the Array or Object owning v, or nil for a root.
func (v *Value) Parent() *Value {
	return v.parent
}

func (v *Value) Root() *Value {
	res := v
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// reset releases the current payload and installs an empty payload of
// kind k. The parent link is kept.
func (v *Value) reset(k Kind) {
	for _, c := range v.elems {
		c.parent = nil
	}
	for _, c := range v.vals {
		c.parent = nil
	}
	*v = Value{kind: k, parent: v.parent}
}

func (v *Value) SetNull() {
	v.reset(NullKind)
}

// Clear releases whatever v holds and leaves it Null.
func (v *Value) Clear() {
	v.reset(NullKind)
}

func (v *Value) SetBool(x bool) {
	v.reset(BoolKind)
	v.b = x
}

func (v *Value) SetInt(x int32) {
	v.reset(Int32Kind)
	v.i = int64(x)
}

func (v *Value) SetUint(x uint32) {
	v.reset(UInt32Kind)
	v.u = uint64(x)
}

func (v *Value) SetInt64(x int64) {
	v.reset(Int64Kind)
	v.i = x
}

func (v *Value) SetUint64(x uint64) {
	v.reset(UInt64Kind)
	v.u = x
}

func (v *Value) SetDouble(x float64) {
	v.reset(DoubleKind)
	v.f = x
}

func (v *Value) SetString(x string) {
	v.reset(StringKind)
	v.s = x
}

// SetArray makes v an empty Array. It does nothing if v is already an
// Array.
func (v *Value) SetArray() {
	if v.kind == ArrayKind {
		return
	}
	v.reset(ArrayKind)
}

// SetObject makes v an empty Object. It does nothing if v is already an
// Object.
func (v *Value) SetObject() {
	if v.kind == ObjectKind {
		return
	}
	v.reset(ObjectKind)
}

// Append adds child at the end of the Array v and takes ownership of it.
// A Null v becomes an empty Array first. Append returns v.
func (v *Value) Append(child *Value) *Value {
	if v.kind != NullKind && v.kind != ArrayKind {
		wrongKind("Append", v.kind, ArrayKind)
	}
	v.checkAdopt("Append", child)
	v.SetArray()
	child.parent = v
	v.elems = append(v.elems, child)
	return v
}

// SetMember stores child under key in the Object v and takes ownership of
// it. A previous member under key is released. A Null v becomes an empty
// Object first. SetMember returns v.
func (v *Value) SetMember(key string, child *Value) *Value {
	if v.kind != NullKind && v.kind != ObjectKind {
		wrongKind("SetMember", v.kind, ObjectKind)
	}
	v.checkAdopt("SetMember", child)
	v.SetObject()
	child.parent = v
	i, found := slices.BinarySearch(v.keys, key)
	if found {
		v.vals[i].parent = nil
		v.vals[i] = child
		return v
	}
	v.keys = slices.Insert(v.keys, i, key)
	v.vals = slices.Insert(v.vals, i, child)
	return v
}

// RemoveMember detaches and returns the member stored under key, or nil
// if there is none.
func (v *Value) RemoveMember(key string) *Value {
	if v.kind != ObjectKind {
		wrongKind("RemoveMember", v.kind, ObjectKind)
	}
	i, found := slices.BinarySearch(v.keys, key)
	if !found {
		return nil
	}
	res := v.vals[i]
	v.keys = slices.Delete(v.keys, i, i+1)
	v.vals = slices.Delete(v.vals, i, i+1)
	res.parent = nil
	return res
}

// Detach removes v from its parent, making it a root. It does nothing
// for a root.
func (v *Value) Detach() *Value {
	p := v.parent
	if p == nil {
		return v
	}
	switch p.kind {
	case ArrayKind:
		if i := slices.Index(p.elems, v); i >= 0 {
			p.elems = slices.Delete(p.elems, i, i+1)
		}
	case ObjectKind:
		if i := slices.Index(p.vals, v); i >= 0 {
			p.keys = slices.Delete(p.keys, i, i+1)
			p.vals = slices.Delete(p.vals, i, i+1)
		}
	}
	v.parent = nil
	return v
}

func (v *Value) checkAdopt(op string, child *Value) {
	if child == nil {
		usage(op, v.kind, ErrNilValue, "")
	}
	if child.parent != nil {
		usage(op, v.kind, ErrOwned, "detach or clone the child first")
	}
	for p := v; p != nil; p = p.parent {
		if p == child {
			usage(op, v.kind, ErrCycle, "")
		}
	}
}

// Size returns the number of children of an Array or Object, 0 for Null
// and 1 for any other kind.
func (v *Value) Size() int {
	switch v.kind {
	case ArrayKind:
		return len(v.elems)
	case ObjectKind:
		return len(v.keys)
	case NullKind:
		return 0
	}
	return 1
}

// Empty reports whether Size is zero: true for Null and for childless
// Arrays and Objects.
func (v *Value) Empty() bool {
	return v.Size() == 0
}
