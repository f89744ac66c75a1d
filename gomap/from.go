package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-serial/tree"
)

// FromAny converts a generic Go value, as produced by encoding/json or a
// YAML decoder, into a tree. Supported are nil, bool, every integer and
// float type, json.Number, string, []any, map[string]any, map[any]any
// with string keys, and yaml.MapSlice.
func FromAny(x any, opts ...UnmapOption) (v *tree.Value, err error) {
	defer tree.Recover(&err)
	u := &unmapper{opts: newUnmapOpts(opts)}
	return u.from(x, "", 0)
}

type unmapper struct {
	opts *unmapOpts
}

func (u *unmapper) from(x any, path string, depth int) (*tree.Value, error) {
	if depth > u.opts.depthLimit() {
		return nil, &UnmapError{FieldPath: path, Message: fmt.Sprintf("nesting exceeds %d", u.opts.depthLimit())}
	}
	switch y := x.(type) {
	case nil:
		return tree.Null(), nil
	case bool:
		return tree.FromBool(y), nil
	case int:
		return u.signed(int64(y)), nil
	case int8:
		return u.signed(int64(y)), nil
	case int16:
		return u.signed(int64(y)), nil
	case int32:
		return u.signed(int64(y)), nil
	case int64:
		return u.signed(y), nil
	case uint:
		return u.unsigned(uint64(y)), nil
	case uint8:
		return u.unsigned(uint64(y)), nil
	case uint16:
		return u.unsigned(uint64(y)), nil
	case uint32:
		return u.unsigned(uint64(y)), nil
	case uint64:
		return u.unsigned(y), nil
	case uintptr:
		return u.unsigned(uint64(y)), nil
	case float32:
		return tree.FromDouble(float64(y)), nil
	case float64:
		return tree.FromDouble(y), nil
	case json.Number:
		return u.number(y, path)
	case string:
		return tree.FromString(y), nil
	case []any:
		res := tree.NewArray()
		for i, e := range y {
			c, err := u.from(e, joinIndex(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	case map[string]any:
		res := tree.NewObject()
		for k, e := range y {
			c, err := u.from(e, joinField(path, k), depth+1)
			if err != nil {
				return nil, err
			}
			res.SetMember(k, c)
		}
		return res, nil
	case map[any]any:
		res := tree.NewObject()
		for k, e := range y {
			key, err := keyString(k, path)
			if err != nil {
				return nil, err
			}
			c, err := u.from(e, joinField(path, key), depth+1)
			if err != nil {
				return nil, err
			}
			res.SetMember(key, c)
		}
		return res, nil
	case yaml.MapSlice:
		res := tree.NewObject()
		for _, item := range y {
			key, err := keyString(item.Key, path)
			if err != nil {
				return nil, err
			}
			if res.HasMember(key) {
				return nil, &UnmapError{FieldPath: joinField(path, key), Message: "duplicate key"}
			}
			c, err := u.from(item.Value, joinField(path, key), depth+1)
			if err != nil {
				return nil, err
			}
			res.SetMember(key, c)
		}
		return res, nil
	}
	return nil, &UnmapError{FieldPath: path, Message: fmt.Sprintf("unsupported type %T", x)}
}

func keyString(k any, path string) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	return "", &UnmapError{FieldPath: path, Message: fmt.Sprintf("non-string key %v (%T)", k, k)}
}

// signed stores x in Int32 when it fits, otherwise Int64.
func (u *unmapper) signed(x int64) *tree.Value {
	if !u.opts.wideInts && x >= math.MinInt32 && x <= math.MaxInt32 {
		return tree.FromInt(int32(x))
	}
	return tree.FromInt64(x)
}

// unsigned stores x in the first of Int32, UInt32, Int64 and UInt64 that
// holds it.
func (u *unmapper) unsigned(x uint64) *tree.Value {
	switch {
	case x <= math.MaxInt64 && u.opts.wideInts:
		return tree.FromInt64(int64(x))
	case x <= math.MaxInt32:
		return tree.FromInt(int32(x))
	case x <= math.MaxUint32 && !u.opts.wideInts:
		return tree.FromUint(uint32(x))
	case x <= math.MaxInt64:
		return tree.FromInt64(int64(x))
	}
	return tree.FromUint64(x)
}

func (u *unmapper) number(n json.Number, path string) (*tree.Value, error) {
	if i, err := n.Int64(); err == nil {
		return u.signed(i), nil
	}
	if x, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return u.unsigned(x), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, &UnmapError{FieldPath: path, Message: fmt.Sprintf("invalid number %q", string(n)), Err: err}
	}
	return tree.FromDouble(f), nil
}
