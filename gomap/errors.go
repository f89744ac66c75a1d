package gomap

import "fmt"

// UnmapError reports a Go value or document that could not be turned
// into a tree.
type UnmapError struct {
	FieldPath string // e.g. "server.ports[2]"
	Message   string
	Err       error
}

func (e *UnmapError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmap error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmap error: %s", e.Message)
}

func (e *UnmapError) Unwrap() error {
	return e.Err
}

// MapError reports a tree that could not be written out.
type MapError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MapError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("map error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("map error: %s", e.Message)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

func joinField(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func joinIndex(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
