// Package printr reconstructs nested key/value structures from the
// indentation- and bracket-delimited dump format produced by PHP's
// print_r, as embedded in official-gazette page markup. It is not a
// general PHP serialization parser: it supports only the Array(...)
// subset and is best-effort on malformed input.
package printr

import "strconv"

// Kind discriminates the Value variants.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// Value is a node in the deserialized tree: a scalar string, an ordered
// sequence, or an ordered string-keyed mapping.
type Value struct {
	kind    Kind
	scalar  string
	items   []*Value
	keys    []string
	entries map[string]*Value
}

// NewScalar returns a scalar value.
func NewScalar(s string) *Value {
	return &Value{kind: KindScalar, scalar: s}
}

// NewMapping returns an empty ordered mapping.
func NewMapping() *Value {
	return &Value{kind: KindMapping, entries: make(map[string]*Value)}
}

// NewSequence returns a sequence holding the given items.
func NewSequence(items ...*Value) *Value {
	return &Value{kind: KindSequence, items: items}
}

// Kind reports which variant this value is.
func (v *Value) Kind() Kind { return v.kind }

// Scalar returns the scalar text, or "" for non-scalars.
func (v *Value) Scalar() string {
	if v == nil || v.kind != KindScalar {
		return ""
	}
	return v.scalar
}

// Len returns the number of items (sequence) or entries (mapping).
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th sequence item, or nil if out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindSequence || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Keys returns the mapping keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindMapping {
		return nil
	}
	return v.keys
}

// Get returns the mapping entry for key, or nil if absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindMapping {
		return nil
	}
	return v.entries[key]
}

// Set inserts or replaces a mapping entry, preserving first-insertion order.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindMapping {
		return
	}
	if _, ok := v.entries[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.entries[key] = val
}

// Find walks the tree depth-first and returns the first scalar value
// stored under the given mapping key, or "" and false if none exists.
func (v *Value) Find(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	stack := []*Value{v}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.kind {
		case KindMapping:
			if hit := n.entries[key]; hit != nil && hit.kind == KindScalar {
				return hit.scalar, true
			}
			// Push children in reverse so traversal follows key order.
			for i := len(n.keys) - 1; i >= 0; i-- {
				stack = append(stack, n.entries[n.keys[i]])
			}
		case KindSequence:
			for i := len(n.items) - 1; i >= 0; i-- {
				stack = append(stack, n.items[i])
			}
		}
	}
	return "", false
}

// canonicalize converts every mapping whose keys are exactly the dense
// decimal integers 0..n-1 into a sequence, bottom-up. Re-canonicalizing
// an already canonical tree is a no-op.
func canonicalize(v *Value) *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindSequence:
		for i, it := range v.items {
			v.items[i] = canonicalize(it)
		}
		return v
	case KindMapping:
		for k, e := range v.entries {
			v.entries[k] = canonicalize(e)
		}
		if idx, ok := denseIndices(v.keys); ok {
			items := make([]*Value, len(v.keys))
			for i, k := range v.keys {
				items[idx[i]] = v.entries[k]
			}
			return NewSequence(items...)
		}
		return v
	default:
		return v
	}
}

// denseIndices reports whether keys are decimal integers forming the
// dense set 0..n-1, and returns each key's numeric position.
func denseIndices(keys []string) ([]int, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	idx := make([]int, len(keys))
	seen := make(map[int]bool, len(keys))
	for i, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || n >= len(keys) || seen[n] {
			return nil, false
		}
		seen[n] = true
		idx[i] = n
	}
	return idx, true
}
