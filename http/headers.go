package http

import (
	json "github.com/json-iterator/go"
)

// Headers maps header names to their values. Names are compared exactly, without case
// folding. A name which appeared once holds a single value, a repeated one holds all the
// values in the order they were received.
type Headers map[string][]string

// Value returns the first value of the header or an empty string.
func (h Headers) Value(name string) string {
	return h.ValueOr(name, "")
}

// ValueOr returns the first value of the header or the otherwise value.
func (h Headers) ValueOr(name, otherwise string) string {
	values := h[name]
	if len(values) == 0 {
		return otherwise
	}

	return values[0]
}

// Values returns all the values of the header. Returns nil if it wasn't presented.
func (h Headers) Values(name string) []string {
	return h[name]
}

func (h Headers) Has(name string) bool {
	_, found := h[name]
	return found
}

// Multi reports whether the header appeared more than once.
func (h Headers) Multi(name string) bool {
	return len(h[name]) > 1
}

// MarshalJSON encodes single-valued headers as strings and repeated ones as arrays.
func (h Headers) MarshalJSON() ([]byte, error) {
	shaped := make(map[string]any, len(h))
	for name, values := range h {
		if len(values) == 1 {
			shaped[name] = values[0]
		} else {
			shaped[name] = values
		}
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(shaped)
}
