package tree

import "iter"

// ArrayView is an Array-typed handle on a Value. It does not copy; every
// method acts on the underlying Value.
type ArrayView struct {
	v *Value
}

// AsArray returns an Array-typed view of v.
func (v *Value) AsArray() ArrayView {
	if v.kind != ArrayKind {
		wrongKind("AsArray", v.kind, ArrayKind)
	}
	return ArrayView{v: v}
}

func (a ArrayView) Value() *Value { return a.v }
func (a ArrayView) Len() int { return a.v.Size() }
func (a ArrayView) At(i int) *Value { return a.v.At(i) }
func (a ArrayView) All() iter.Seq2[int, *Value] { return a.v.Elements() }
func (a ArrayView) Append(child *Value) ArrayView {
	a.v.Append(child)
	return a
}

// ObjectView is an Object-typed handle on a Value. It does not copy;
// every method acts on the underlying Value.
type ObjectView struct {
	v *Value
}

// AsObject returns an Object-typed view of v.
func (v *Value) AsObject() ObjectView {
	if v.kind != ObjectKind {
		wrongKind("AsObject", v.kind, ObjectKind)
	}
	return ObjectView{v: v}
}

func (o ObjectView) Value() *Value { return o.v }
func (o ObjectView) Len() int { return o.v.Size() }
func (o ObjectView) Keys() []string { return o.v.Keys() }
func (o ObjectView) Has(key string) bool { return o.v.HasMember(key) }
func (o ObjectView) Member(key string) *Value { return o.v.Member(key) }
func (o ObjectView) Lookup(key string) (*Value, bool) { return o.v.Lookup(key) }
func (o ObjectView) Remove(key string) *Value { return o.v.RemoveMember(key) }
func (o ObjectView) All() iter.Seq2[string, *Value] { return o.v.Members() }
func (o ObjectView) Set(key string, child *Value) ObjectView {
	o.v.SetMember(key, child)
	return o
}
