package bind

import (
	"github.com/signadot/go-serial/debug"
	"github.com/signadot/go-serial/tree"
)

// coerceOrder is the order in which Coerce tries other categories.
var coerceOrder = [...]Category{IntCategory, FloatCategory, BoolCategory}

// Translate writes the members of node into dst through the registered
// bindings and returns the number of members written. Members with no
// binding of their category are skipped. A node that is not an Object
// leaves dst untouched and yields 0.
//
// An Array member counts once per array or sequence binding registered
// under its name, however many elements it writes.
func (b *Binder[T]) Translate(dst *T, node *tree.Value) int {
	if node == nil {
		panic("bind: Translate called with nil node")
	}
	if dst == nil {
		panic("bind: Translate called with nil destination")
	}
	if !node.IsObject() {
		if debug.Bind() {
			debug.Logf("bind: %s node is not an object\n", node.Kind())
		}
		return 0
	}
	n := 0
	node.ForEachObject(func(key string, child *tree.Value) {
		n += b.member(dst, key, child)
	})
	return n
}

// TranslateUniform translates node into dst[0] and copies the result
// into every other element of dst. It returns the match count of the
// single translation, or 0 when dst is empty. Slices and other reference
// fields are shared by the copies.
func (b *Binder[T]) TranslateUniform(dst []T, node *tree.Value) int {
	if len(dst) == 0 {
		return 0
	}
	n := b.Translate(&dst[0], node)
	for i := 1; i < len(dst); i++ {
		dst[i] = dst[0]
	}
	return n
}

func (b *Binder[T]) member(dst *T, key string, child *tree.Value) int {
	if child.IsArray() {
		if b.scalarOnly {
			logSkip(key, child, "array members disabled")
			return 0
		}
		return b.arrayMember(dst, key, child)
	}
	cat, ok := CategoryOf(child)
	if !ok {
		logSkip(key, child, "no category")
		return 0
	}
	if s, ok := b.scalars[cat][key]; ok {
		s.set(dst, child)
		return 1
	}
	if b.coerce && cat != StringCategory {
		for _, c := range coerceOrder {
			if c == cat {
				continue
			}
			s, ok := b.scalars[c][key]
			if !ok || !convertible(child, c) {
				continue
			}
			if debug.Bind() {
				debug.Logf("bind: coerce %q from %s to %s\n", key, cat, c)
			}
			s.set(dst, child)
			return 1
		}
	}
	logSkip(key, child, "no "+cat.String()+" binding")
	return 0
}

func (b *Binder[T]) arrayMember(dst *T, key string, child *tree.Value) int {
	n := 0
	for c := range numCategories {
		if a, ok := b.arrays[c][key]; ok {
			a.write(dst, child, b.coerce)
			n++
		}
		if s, ok := b.sequences[c][key]; ok {
			writeSeq(s, dst, child, b.coerce)
			n++
		}
	}
	if n == 0 {
		logSkip(key, child, "no array binding")
	}
	return n
}

// write stores element i of v into slot i for i below the capacity and
// the length of the field. Elements of another category leave their slot
// as it was.
func (a array[T]) write(dst *T, v *tree.Value, coerce bool) {
	limit := min(a.capacity, a.elems.len(dst), v.Size())
	for i := range limit {
		e := v.At(i)
		if accepts(a.elems.cat, e, coerce) {
			a.elems.set(dst, i, e)
		}
	}
}

// writeSeq replaces the field with the elements of v that belong to the
// binding's category.
func writeSeq[T any](s Seq[T], dst *T, v *tree.Value, coerce bool) {
	s.reset(dst, v.Size())
	v.ForEachArray(func(e *tree.Value) {
		if accepts(s.cat, e, coerce) {
			s.add(dst, e)
		}
	})
}

func accepts(c Category, v *tree.Value, coerce bool) bool {
	vc, ok := CategoryOf(v)
	if !ok {
		return false
	}
	if vc == c {
		return true
	}
	return coerce && vc != StringCategory && convertible(v, c)
}

func convertible(v *tree.Value, c Category) bool {
	switch c {
	case IntCategory:
		return v.IsConvertibleTo(tree.Int64Kind) || v.IsConvertibleTo(tree.UInt64Kind)
	case FloatCategory:
		return v.IsConvertibleTo(tree.DoubleKind)
	case BoolCategory:
		return v.IsConvertibleTo(tree.BoolKind)
	}
	return false
}
