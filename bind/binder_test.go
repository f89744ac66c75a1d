package bind

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-serial/tree"
)

type settings struct {
	Count   int
	Label   string
	Ratio   float64
	Enabled bool
	Small   uint8
	Ports   [3]uint16
	Tags    []string
	Weights []float32
}

func obj(kvs ...any) *tree.Value {
	res := tree.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.SetMember(kvs[i].(string), kvs[i+1].(*tree.Value))
	}
	return res
}

func countLabel(opts ...Option) *Binder[settings] {
	return New[settings](opts...).
		AddMember("count", Int(func(s *settings) *int { return &s.Count })).
		AddMember("label", String(func(s *settings) *string { return &s.Label }))
}

func full(opts ...Option) *Binder[settings] {
	return countLabel(opts...).
		AddMember("ratio", Float(func(s *settings) *float64 { return &s.Ratio })).
		AddMember("enabled", Bool(func(s *settings) *bool { return &s.Enabled })).
		AddMember("small", Int(func(s *settings) *uint8 { return &s.Small })).
		AddArray("ports", IntArray(func(s *settings) []uint16 { return s.Ports[:] }), 2).
		AddSequence("tags", StringSeq(func(s *settings) *[]string { return &s.Tags })).
		AddSequence("weights", FloatSeq(func(s *settings) *[]float32 { return &s.Weights }))
}

func TestTranslate(t *testing.T) {
	b := countLabel()
	node := obj(
		"count", tree.FromInt(5),
		"label", tree.FromString("hi"),
		"extra", tree.FromBool(true))
	var got settings
	if n := b.Translate(&got, node); n != 2 {
		t.Errorf("matches: got %d want 2", n)
	}
	want := settings{Count: 5, Label: "hi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("translate mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateNonObject(t *testing.T) {
	b := full()
	orig := settings{Count: 3, Label: "keep", Tags: []string{"a"}}
	for _, node := range []*tree.Value{
		tree.NewArray(tree.FromInt(1), tree.FromInt(2)),
		tree.Null(),
		tree.FromInt(4),
		tree.FromString("count"),
	} {
		got := orig
		got.Tags = []string{"a"}
		if n := b.Translate(&got, node); n != 0 {
			t.Errorf("%s: matches: got %d want 0", node.Kind(), n)
		}
		if diff := cmp.Diff(orig, got); diff != "" {
			t.Errorf("%s: instance modified (-want +got):\n%s", node.Kind(), diff)
		}
	}
}

func TestTranslateEmptyObject(t *testing.T) {
	var got settings
	if n := full().Translate(&got, tree.NewObject()); n != 0 {
		t.Errorf("matches: got %d want 0", n)
	}
}

func TestTranslateUniform(t *testing.T) {
	b := countLabel()
	insts := make([]settings, 3)
	n := b.TranslateUniform(insts, obj("count", tree.FromInt(7)))
	if n != 1 {
		t.Errorf("matches: got %d want 1", n)
	}
	for i := range insts {
		if insts[i].Count != 7 {
			t.Errorf("instance %d: count %d want 7", i, insts[i].Count)
		}
	}
	if n := b.TranslateUniform(nil, obj("count", tree.FromInt(7))); n != 0 {
		t.Errorf("empty: got %d want 0", n)
	}
}

func TestMembers(t *testing.T) {
	b := New[settings]()
	if b.Members() != 0 {
		t.Fatalf("new binder has %d members", b.Members())
	}
	b = countLabel()
	if b.Members() != 2 {
		t.Errorf("got %d want 2", b.Members())
	}
	// same name and category replaces
	b.AddMember("count", Int(func(s *settings) *uint8 { return &s.Small }))
	if b.Members() != 2 {
		t.Errorf("after replace: got %d want 2", b.Members())
	}
	// same name in another category is a separate binding
	b.AddMember("count", Float(func(s *settings) *float64 { return &s.Ratio }))
	if b.Members() != 3 {
		t.Errorf("after float binding: got %d want 3", b.Members())
	}
	if full().Members() != 8 {
		t.Errorf("full: got %d want 8", full().Members())
	}
	if !b.Lookup(FloatCategory, "count") || b.Lookup(BoolCategory, "count") {
		t.Error("lookup by category")
	}
}

func TestReplaceBinding(t *testing.T) {
	b := countLabel().
		AddMember("count", Int(func(s *settings) *uint8 { return &s.Small }))
	var got settings
	b.Translate(&got, obj("count", tree.FromInt(9)))
	if diff := cmp.Diff(settings{Small: 9}, got); diff != "" {
		t.Errorf("last binding should win (-want +got):\n%s", diff)
	}
}

func TestCategoryDispatch(t *testing.T) {
	b := New[settings]().
		AddMember("v", Int(func(s *settings) *int { return &s.Count })).
		AddMember("v", Float(func(s *settings) *float64 { return &s.Ratio }))
	tests := []struct {
		name string
		node *tree.Value
		want settings
	}{
		{"Int32", tree.FromInt(3), settings{Count: 3}},
		{"UInt32", tree.FromUint(4), settings{Count: 4}},
		{"Int64", tree.FromInt64(-5), settings{Count: -5}},
		{"UInt64", tree.FromUint64(1 << 40), settings{Count: 1 << 40}},
		{"Double", tree.FromDouble(2.5), settings{Ratio: 2.5}},
		{"integral Double", tree.FromDouble(2), settings{Ratio: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got settings
			if n := b.Translate(&got, obj("v", tt.node)); n != 1 {
				t.Errorf("matches: got %d want 1", n)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	// no Bool or String binding under v
	var got settings
	for _, node := range []*tree.Value{tree.FromBool(true), tree.FromString("3"), tree.Null(), tree.NewObject()} {
		if n := b.Translate(&got, obj("v", node)); n != 0 {
			t.Errorf("%s: matches: got %d want 0", node.Kind(), n)
		}
	}
	if diff := cmp.Diff(settings{}, got); diff != "" {
		t.Errorf("unmatched members written (-want +got):\n%s", diff)
	}
}

func TestIntegerTruncation(t *testing.T) {
	var got settings
	full().Translate(&got, obj(
		"small", tree.FromInt(300),
		"count", tree.FromUint64(math.MaxUint32+1)))
	if got.Small != 44 {
		t.Errorf("small: got %d want 44", got.Small)
	}
	if got.Count != math.MaxUint32+1 {
		t.Errorf("count: got %d", got.Count)
	}
}

func TestArrayBinding(t *testing.T) {
	b := full()
	got := settings{Ports: [3]uint16{9, 9, 9}}
	n := b.Translate(&got, obj("ports", tree.NewArray(
		tree.FromString("x"),
		tree.FromUint(80),
		tree.FromInt(443))))
	if n != 1 {
		t.Errorf("matches: got %d want 1", n)
	}
	// capacity 2 stops before the third slot, the string leaves slot 0
	want := [3]uint16{9, 80, 9}
	if got.Ports != want {
		t.Errorf("ports: got %v want %v", got.Ports, want)
	}

	got = settings{}
	b.Translate(&got, obj("ports", tree.NewArray(tree.FromInt(1))))
	if want := [3]uint16{1, 0, 0}; got.Ports != want {
		t.Errorf("short array: got %v want %v", got.Ports, want)
	}
}

func TestSequenceBinding(t *testing.T) {
	b := full()
	got := settings{Tags: []string{"old"}}
	n := b.Translate(&got, obj(
		"tags", tree.NewArray(tree.FromString("a"), tree.FromInt(1), tree.FromString("b")),
		"weights", tree.NewArray(tree.FromDouble(0.5), tree.FromInt(2)),
		"label", tree.NewArray(tree.FromString("not scalar"))))
	if n != 2 {
		t.Errorf("matches: got %d want 2", n)
	}
	want := settings{Tags: []string{"a", "b"}, Weights: []float32{0.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got = settings{Tags: []string{"old"}}
	b.Translate(&got, obj("tags", tree.NewArray()))
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("empty array should give an empty sequence, got %#v", got.Tags)
	}
}

func TestScalarOnly(t *testing.T) {
	b := full(ScalarOnly())
	got := settings{Tags: []string{"old"}}
	n := b.Translate(&got, obj(
		"count", tree.FromInt(1),
		"tags", tree.NewArray(tree.FromString("a")),
		"ports", tree.NewArray(tree.FromInt(1))))
	if n != 1 {
		t.Errorf("matches: got %d want 1", n)
	}
	want := settings{Count: 1, Tags: []string{"old"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCoerce(t *testing.T) {
	node := obj(
		"enabled", tree.FromInt(1),
		"ratio", tree.FromInt(3),
		"count", tree.FromBool(true),
		"label", tree.FromInt(7),
		"weights", tree.NewArray(tree.FromInt(1), tree.FromDouble(2.5), tree.FromString("x")))

	var plain settings
	if n := full().Translate(&plain, node); n != 1 {
		t.Errorf("without coercion: got %d matches want 1", n)
	}
	if diff := cmp.Diff(settings{Weights: []float32{2.5}}, plain); diff != "" {
		t.Errorf("without coercion (-want +got):\n%s", diff)
	}

	var got settings
	if n := full(Coerce()).Translate(&got, node); n != 4 {
		t.Errorf("with coercion: got %d matches want 4", n)
	}
	want := settings{
		Count:   1,
		Ratio:   3,
		Enabled: true,
		Weights: []float32{1, 2.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("with coercion (-want +got):\n%s", diff)
	}
}

func TestRegistrationPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero scalar", func() { New[settings]().AddMember("x", Scalar[settings]{}) }},
		{"zero elems", func() { New[settings]().AddArray("x", Elems[settings]{}, 1) }},
		{"zero seq", func() { New[settings]().AddSequence("x", Seq[settings]{}) }},
		{"negative capacity", func() {
			New[settings]().AddArray("x", IntArray(func(s *settings) []uint16 { return s.Ports[:] }), -1)
		}},
		{"nil node", func() { full().Translate(&settings{}, nil) }},
		{"nil destination", func() { full().Translate(nil, tree.NewObject()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		v    *tree.Value
		want Category
		ok   bool
	}{
		{tree.FromInt(1), IntCategory, true},
		{tree.FromUint64(1), IntCategory, true},
		{tree.FromBool(true), BoolCategory, true},
		{tree.FromDouble(1), FloatCategory, true},
		{tree.FromString(""), StringCategory, true},
		{tree.Null(), 0, false},
		{tree.NewArray(), 0, false},
		{tree.NewObject(), 0, false},
	}
	for _, tt := range tests {
		c, ok := CategoryOf(tt.v)
		if c != tt.want || ok != tt.ok {
			t.Errorf("%s: got %s, %t want %s, %t", tt.v.Kind(), c, ok, tt.want, tt.ok)
		}
	}
}
