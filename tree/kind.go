package tree

import "fmt"

// Kind is the active variant tag of a Value.
//
// The declaration order is significant: values of different kinds
// compare by their position in this list.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	Int32Kind
	UInt32Kind
	Int64Kind
	UInt64Kind
	DoubleKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindNames = [...]string{
	NullKind:   "Null",
	BoolKind:   "Bool",
	Int32Kind:  "Int32",
	UInt32Kind: "UInt32",
	Int64Kind:  "Int64",
	UInt64Kind: "UInt64",
	DoubleKind: "Double",
	StringKind: "String",
	ArrayKind:  "Array",
	ObjectKind: "Object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown kind>"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unrecognized kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for i, name := range kindNames {
		if name == string(d) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

// Kinds returns all kinds in their ordering.
func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		Int32Kind,
		UInt32Kind,
		Int64Kind,
		UInt64Kind,
		DoubleKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}

// IsIntegral reports whether k is one of the four integer kinds.
func (k Kind) IsIntegral() bool {
	switch k {
	case Int32Kind, UInt32Kind, Int64Kind, UInt64Kind:
		return true
	default:
		return false
	}
}
