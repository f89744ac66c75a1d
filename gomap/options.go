package gomap

import "github.com/goccy/go-yaml"

type unmapOpts struct {
	wideInts bool
	maxDepth int
	yaml     []yaml.DecodeOption
}

func (o *unmapOpts) depthLimit() int {
	if o.maxDepth <= 0 {
		return defaultMaxDepth
	}
	return o.maxDepth
}

const defaultMaxDepth = 10000

type UnmapOption func(*unmapOpts)

// WideInts stores every integer as Int64, or UInt64 when it exceeds the
// Int64 range, instead of the narrowest kind.
func WideInts() UnmapOption { return func(o *unmapOpts) { o.wideInts = true } }

// MaxDepth bounds the nesting of arrays and objects. Deeper input, such
// as a slice that contains itself, is an error.
func MaxDepth(n int) UnmapOption { return func(o *unmapOpts) { o.maxDepth = n } }

// YAMLOptions passes decode options through to the YAML decoder used by
// FromYAML.
func YAMLOptions(opts ...yaml.DecodeOption) UnmapOption {
	return func(o *unmapOpts) { o.yaml = append(o.yaml, opts...) }
}

func newUnmapOpts(opts []UnmapOption) *unmapOpts {
	o := &unmapOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}
