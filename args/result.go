package args

import (
	"gopkg.in/yaml.v3"
	"iter"
	"slices"
)

// Value is either a boolean flag or a string.
type Value struct {
	flag bool
	str  string
}

// FlagValue is bound for a boolean switch that was given.
func FlagValue() Value {
	return Value{flag: true}
}

// StringValue is bound for valued switches and positional parameters.
func StringValue(s string) Value {
	return Value{str: s}
}

// IsFlag reports whether this Value was bound by a boolean switch.
func (v Value) IsFlag() bool {
	return v.flag
}

// Bool is true for a flag, or a non-empty string.
func (v Value) Bool() bool {
	return v.flag || len(v.str) > 0
}

// String returns the string value, or "true" for a flag.
func (v Value) String() string {
	if v.flag {
		return "true"
	}
	return v.str
}

func (v Value) any() any {
	if v.flag {
		return true
	}
	return v.str
}

// Result maps parameter names to bound values.
// Names are kept in the order they were first bound.
type Result struct {
	keys   []string
	values map[string]Value
}

func NewResult() *Result {
	return &Result{values: map[string]Value{}}
}

func (r *Result) set(name string, val Value) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = val
}

// Get returns the bound value for name, and whether one was bound.
func (r *Result) Get(name string) (Value, bool) {
	val, ok := r.values[name]
	return val, ok
}

func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Bool returns true if name is bound to a truthy value.
func (r *Result) Bool(name string) bool {
	return r.values[name].Bool()
}

// String returns the bound value for name as a string, or an empty string if nothing is bound.
func (r *Result) String(name string) string {
	val, ok := r.values[name]
	if !ok {
		return ""
	}
	return val.String()
}

func (r *Result) Len() int {
	return len(r.keys)
}

// Keys returns bound names in the order they were first bound.
func (r *Result) Keys() []string {
	return slices.Clone(r.keys)
}

// All iterates bound names and values in order.
func (r *Result) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// Map returns the bound values as a map of bool or string.
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for key, val := range r.All() {
		m[key] = val.any()
	}
	return m
}

// MarshalYAML encodes a Result as a mapping that keeps binding order.
func (r *Result) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, val := range r.All() {
		valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val.String()}
		if val.IsFlag() {
			valNode.Tag = "!!bool"
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valNode,
		)
	}
	return node, nil
}
