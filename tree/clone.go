package tree

// Clone returns a deep copy of v with no parent.
//
// Cloning walks the whole subtree. It is never done implicitly; attach
// operations take ownership instead of copying.
func (v *Value) Clone() *Value {
	res := &Value{}
	v.cloneTo(res)
	return res
}

func (v *Value) cloneTo(dst *Value) {
	dst.kind = v.kind
	dst.b = v.b
	dst.i = v.i
	dst.u = v.u
	dst.f = v.f
	dst.s = v.s
	if v.elems != nil {
		dst.elems = make([]*Value, len(v.elems))
		for i, c := range v.elems {
			dc := &Value{parent: dst}
			c.cloneTo(dc)
			dst.elems[i] = dc
		}
	}
	if v.keys != nil {
		dst.keys = make([]string, len(v.keys))
		copy(dst.keys, v.keys)
		dst.vals = make([]*Value, len(v.vals))
		for i, c := range v.vals {
			dc := &Value{parent: dst}
			c.cloneTo(dc)
			dst.vals[i] = dc
		}
	}
}

// Assign replaces the contents of v with a deep copy of src. v keeps its
// place in its own tree. src may be a descendant of v.
func (v *Value) Assign(src *Value) {
	if src == v {
		return
	}
	c := src.Clone()
	v.reset(c.kind)
	parent := v.parent
	*v = *c
	v.parent = parent
	for _, e := range v.elems {
		e.parent = v
	}
	for _, e := range v.vals {
		e.parent = v
	}
}
