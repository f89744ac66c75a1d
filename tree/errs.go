package tree

import (
	"errors"
	"fmt"
)

var (
	ErrWrongKind  = errors.New("wrong kind")
	ErrOutOfRange = errors.New("index out of range")
	ErrNoMember   = errors.New("no such member")
	ErrOwned      = errors.New("value already has a parent")
	ErrCycle      = errors.New("value would become its own descendant")
	ErrNilValue   = errors.New("nil value")
)

// UsageError describes a violated precondition: asking a Value for
// something its kind cannot provide, or breaking the tree shape.
//
// Values never return a UsageError; they panic with one. Callers that
// cannot tolerate a panic should check kinds (or IsConvertibleTo) first,
// or convert the panic with Recover.
type UsageError struct {
	Op     string
	Kind   Kind
	Detail string
	Err    error
}

func (e *UsageError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("tree: %s on %s value: %v (%s)", e.Op, e.Kind, e.Err, e.Detail)
	}
	return fmt.Sprintf("tree: %s on %s value: %v", e.Op, e.Kind, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usage(op string, k Kind, err error, detail string) {
	panic(&UsageError{Op: op, Kind: k, Err: err, Detail: detail})
}

func wrongKind(op string, have Kind, want ...Kind) {
	detail := ""
	switch len(want) {
	case 0:
	case 1:
		detail = "want " + want[0].String()
	default:
		detail = fmt.Sprintf("want one of %v", want)
	}
	usage(op, have, ErrWrongKind, detail)
}

// Recover is meant to be deferred by functions that hand trees to code
// they do not control:
//
//	func load(v *tree.Value) (err error) {
//		defer tree.Recover(&err)
//		...
//	}
//
// A panic carrying a *UsageError is stored in *errp; any other panic
// continues unwinding.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ue, ok := r.(*UsageError); ok {
		*errp = ue
		return
	}
	panic(r)
}
