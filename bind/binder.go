package bind

import (
	"fmt"

	"github.com/signadot/go-serial/debug"
	"github.com/signadot/go-serial/tree"
)

type array[T any] struct {
	elems    Elems[T]
	capacity int
}

// Binder maps member names to fields of T. Bindings are kept per
// category, so the same name may be bound once for each category.
//
// A Binder is not safe for concurrent registration. Once populated it is
// only read and may be shared by goroutines translating into distinct
// instances.
type Binder[T any] struct {
	config
	scalars   [numCategories]map[string]Scalar[T]
	arrays    [numCategories]map[string]array[T]
	sequences [numCategories]map[string]Seq[T]
}

func New[T any](opts ...Option) *Binder[T] {
	b := &Binder[T]{}
	for _, o := range opts {
		o(&b.config)
	}
	for i := range numCategories {
		b.scalars[i] = map[string]Scalar[T]{}
		b.arrays[i] = map[string]array[T]{}
		b.sequences[i] = map[string]Seq[T]{}
	}
	return b
}

// AddMember binds name to a scalar field. A later binding of the same
// name and category replaces the earlier one.
func (b *Binder[T]) AddMember(name string, s Scalar[T]) *Binder[T] {
	if s.set == nil {
		panic(fmt.Sprintf("bind: AddMember(%q) with zero Scalar", name))
	}
	b.scalars[s.cat][name] = s
	return b
}

// AddArray binds name to a fixed size array field. At most capacity
// elements are ever written.
func (b *Binder[T]) AddArray(name string, e Elems[T], capacity int) *Binder[T] {
	if e.set == nil {
		panic(fmt.Sprintf("bind: AddArray(%q) with zero Elems", name))
	}
	if capacity < 0 {
		panic(fmt.Sprintf("bind: AddArray(%q) with negative capacity %d", name, capacity))
	}
	b.arrays[e.cat][name] = array[T]{elems: e, capacity: capacity}
	return b
}

// AddSequence binds name to a slice field.
func (b *Binder[T]) AddSequence(name string, s Seq[T]) *Binder[T] {
	if s.add == nil {
		panic(fmt.Sprintf("bind: AddSequence(%q) with zero Seq", name))
	}
	b.sequences[s.cat][name] = s
	return b
}

// Members returns the number of registered bindings. Rebinding a name
// in the same category replaces the binding and does not add to the count.
func (b *Binder[T]) Members() int {
	n := 0
	for i := range numCategories {
		n += len(b.scalars[i]) + len(b.arrays[i]) + len(b.sequences[i])
	}
	return n
}

// Lookup reports whether name has a scalar binding in category c.
func (b *Binder[T]) Lookup(c Category, name string) bool {
	if c < 0 || c >= numCategories {
		return false
	}
	_, ok := b.scalars[c][name]
	return ok
}

func logSkip(key string, v *tree.Value, reason string) {
	if debug.Bind() {
		debug.Logf("bind: skip %q = %v: %s\n", key, v, reason)
	}
}
