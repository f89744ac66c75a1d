package gomap

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/go-serial/tree"
)

// ToAny converts v into generic Go values. Numbers keep the width of
// their kind: Int32 becomes int32, UInt64 becomes uint64 and so on.
// Arrays become []any and objects map[string]any.
func ToAny(v *tree.Value) any {
	switch v.Kind() {
	case tree.NullKind:
		return nil
	case tree.BoolKind:
		return v.AsBool()
	case tree.Int32Kind:
		return v.AsInt()
	case tree.UInt32Kind:
		return v.AsUint()
	case tree.Int64Kind:
		return v.AsInt64()
	case tree.UInt64Kind:
		return v.AsUint64()
	case tree.DoubleKind:
		return v.AsDouble()
	case tree.StringKind:
		return v.AsString()
	case tree.ArrayKind:
		res := make([]any, 0, v.Size())
		v.ForEachArray(func(c *tree.Value) {
			res = append(res, ToAny(c))
		})
		return res
	case tree.ObjectKind:
		res := make(map[string]any, v.Size())
		v.ForEachObject(func(k string, c *tree.Value) {
			res[k] = ToAny(c)
		})
		return res
	}
	return nil
}

// toOrdered is ToAny with objects as yaml.MapSlice, so that encoders
// write members in key order.
func toOrdered(v *tree.Value) any {
	switch v.Kind() {
	case tree.ArrayKind:
		res := make([]any, 0, v.Size())
		v.ForEachArray(func(c *tree.Value) {
			res = append(res, toOrdered(c))
		})
		return res
	case tree.ObjectKind:
		res := make(yaml.MapSlice, 0, v.Size())
		v.ForEachObject(func(k string, c *tree.Value) {
			res = append(res, yaml.MapItem{Key: k, Value: toOrdered(c)})
		})
		return res
	}
	return ToAny(v)
}
