package value

import "fmt"

// List is an EDN list: an ordered, positional sequence read from `(...)`.
type List struct {
	Items []Value
	meta  *Map
}

// NewList returns a List over items. The slice is not copied.
func NewList(items []Value) *List {
	return &List{Items: items}
}

// Kind implements Value.
func (*List) Kind() Kind { return KindList }

// Meta implements MetadataCarrier.
func (l *List) Meta() *Map { return l.meta }

// WithMeta implements MetadataCarrier.
func (l *List) WithMeta(m *Map) Value {
	out := *l
	out.meta = l.meta.mergeOverriddenBy(m)
	return &out
}

// Vector is an EDN vector: an ordered, indexable sequence read from `[...]`.
type Vector struct {
	Items []Value
	meta  *Map
}

// NewVector returns a Vector over items. The slice is not copied.
func NewVector(items []Value) *Vector {
	return &Vector{Items: items}
}

// Kind implements Value.
func (*Vector) Kind() Kind { return KindVector }

// Meta implements MetadataCarrier.
func (v *Vector) Meta() *Map { return v.meta }

// WithMeta implements MetadataCarrier.
func (v *Vector) WithMeta(m *Map) Value {
	out := *v
	out.meta = v.meta.mergeOverriddenBy(m)
	return &out
}

// MapEntry is one key/value pair of a Map, in the order it was read.
type MapEntry struct {
	Key Value
	Val Value
}

// Map is an EDN map literal: an insertion-ordered sequence of key/value
// pairs with unique keys, read from `{...}`.
type Map struct {
	entries []MapEntry
	meta    *Map
}

// NewMap validates that no two entries share an equal key and returns a Map,
// or an error naming the first duplicate key encountered.
func NewMap(entries []MapEntry) (*Map, error) {
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if Equal(entries[i].Key, entries[j].Key) {
				return nil, fmt.Errorf("Duplicate key: %s", Repr(entries[j].Key))
			}
		}
	}
	return &Map{entries: entries}, nil
}

// Kind implements Value.
func (*Map) Kind() Kind { return KindMap }

// Meta implements MetadataCarrier.
func (m *Map) Meta() *Map { return m.meta }

// WithMeta implements MetadataCarrier.
func (m *Map) WithMeta(other *Map) Value {
	out := *m
	out.meta = m.meta.mergeOverriddenBy(other)
	return &out
}

// Entries returns the map's key/value pairs in insertion order.
func (m *Map) Entries() []MapEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value associated with a key equal to k, using EDN value
// equality, and whether such a key was present.
func (m *Map) Get(k Value) (Value, bool) {
	for _, e := range m.Entries() {
		if Equal(e.Key, k) {
			return e.Val, true
		}
	}
	return nil, false
}

// withEntry returns a copy of m with key set to val, overriding any
// existing entry for an equal key. Used by mergeOverriddenBy to overlay one
// metadata map on another.
func (m *Map) withEntry(key, val Value) *Map {
	entries := append([]MapEntry{}, m.Entries()...)
	for i, e := range entries {
		if Equal(e.Key, key) {
			entries[i].Val = val
			return &Map{entries: entries}
		}
	}
	entries = append(entries, MapEntry{Key: key, Val: val})
	return &Map{entries: entries}
}

// mergeOverriddenBy returns a Map containing base's entries overlaid with
// other's entries; other's value wins on key conflicts. Either receiver may
// be nil.
func (base *Map) mergeOverriddenBy(other *Map) *Map {
	if base == nil {
		return other
	}
	if other == nil {
		return base
	}
	merged := &Map{entries: append([]MapEntry{}, base.entries...)}
	for _, e := range other.entries {
		merged = merged.withEntry(e.Key, e.Val)
	}
	return merged
}

// Set is an EDN set literal: an unordered collection of unique elements,
// read from `#{...}`.
type Set struct {
	Elems []Value
	meta  *Map
}

// NewSet validates that no two elements are equal and returns a Set, or an
// error naming the first duplicate encountered.
func NewSet(elems []Value) (*Set, error) {
	for i := range elems {
		for j := i + 1; j < len(elems); j++ {
			if Equal(elems[i], elems[j]) {
				return nil, fmt.Errorf("Duplicate key: %s", Repr(elems[j]))
			}
		}
	}
	return &Set{Elems: elems}, nil
}

// Kind implements Value.
func (*Set) Kind() Kind { return KindSet }

// Meta implements MetadataCarrier.
func (s *Set) Meta() *Map { return s.meta }

// WithMeta implements MetadataCarrier.
func (s *Set) WithMeta(m *Map) Value {
	out := *s
	out.meta = s.meta.mergeOverriddenBy(m)
	return &out
}
