package gomap

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-serial/tree"
)

// FromYAML decodes a single YAML document into a tree. JSON is accepted
// as well. An empty document decodes to Null.
func FromYAML(d []byte, opts ...UnmapOption) (*tree.Value, error) {
	o := newUnmapOpts(opts)
	dec := yaml.NewDecoder(bytes.NewReader(d), o.yaml...)
	var x any
	if err := dec.Decode(&x); err != nil {
		if errors.Is(err, io.EOF) {
			return tree.Null(), nil
		}
		return nil, &UnmapError{Message: "decoding yaml", Err: err}
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &UnmapError{Message: "trailing content after document", Err: err}
	}
	return FromAny(x, opts...)
}

// ToYAML encodes v as a YAML document with object members in key order.
func ToYAML(v *tree.Value) ([]byte, error) {
	d, err := yaml.Marshal(toOrdered(v))
	if err != nil {
		return nil, &MapError{Message: "encoding yaml", Err: err}
	}
	return d, nil
}

// ToJSON encodes v as JSON with object members in key order.
func ToJSON(v *tree.Value) ([]byte, error) {
	d, err := yaml.MarshalWithOptions(toOrdered(v), yaml.JSON())
	if err != nil {
		return nil, &MapError{Message: "encoding json", Err: err}
	}
	return bytes.TrimSpace(d), nil
}
