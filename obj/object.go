package obj

import "sort"

// Object is a generic, mutable, string-keyed container that remembers when
// each key was first created.
//
// Lookup cost is that of a plain map, but unlike a plain map an Object has a
// well-defined enumeration order: integer-like keys first in ascending
// numeric order, then every other key in the order it was first created.
// See [Object.Keys] for the exact rule. This mirrors the own-property
// enumeration order of JavaScript objects, so JSON round-trips and
// traversals behave the way they do in a browser or Node.js.
//
// The zero value is an empty object ready to use.
//
// # Creating an object
//
//	o := obj.New[int]()
//	o := obj.New(obj.Entry[int]{Key: "a", Value: 1}, obj.Entry[int]{Key: "b", Value: 2})
//	o := obj.FromEntries(entries)
//	o := obj.FromMap(map[string]int{"a": 1, "b": 2})
//
// # Mutability
//
// Object is deliberately mutable: Set and Delete change the receiver in
// place, and the traversal operations hand callbacks a live reference to the
// object being walked. An Object is therefore not safe for concurrent use;
// guard it with a mutex if it must be shared across goroutines.
//
// # Traversal
//
// Object carries no iteration methods of its own. The traversal and
// aggregation operations ([ForEach], [Map], [Filter], [Reduce], [Some],
// [Every]) are package-level functions that take the object as their first
// argument. Map and Reduce change the element type, which Go methods cannot
// express, and keeping the whole set package-level keeps the container a
// plain data structure rather than an iteration protocol.
//
// # JavaScript equivalents
//
// The API maps to JavaScript's object utilities where possible:
//   - Keys, Values and Entries match Object.keys/values/entries.
//   - Set, Get, Has and Delete match property assignment, access, the "in"
//     operator and the delete operator.
//   - The package-level operations match the Array.prototype methods of the
//     same name, applied over the object's entries.
type Object[V any] struct {
	values map[string]V
	order  []string // first-creation order of the keys currently present
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Object from a variadic list of entries.
// Later entries overwrite earlier ones with the same key; the key keeps the
// position of its first appearance.
func New[V any](entries ...Entry[V]) *Object[V] {
	o := &Object[V]{
		values: make(map[string]V, len(entries)),
		order:  make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// FromEntries creates an Object from a slice of entries (the slice is not
// retained). Later entries overwrite earlier ones with the same key.
func FromEntries[V any](entries []Entry[V]) *Object[V] {
	return New(entries...)
}

// FromMap creates an Object from a plain Go map.
//
// A Go map has no creation chronology, so FromMap fixes one: integer-like
// keys in ascending numeric order, then the remaining keys in lexicographic
// order. The result is deterministic for a given map content.
func FromMap[V any](m map[string]V) *Object[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aIdx := parseIndex(keys[i])
		b, bIdx := parseIndex(keys[j])
		switch {
		case aIdx && bIdx:
			return a < b
		case aIdx != bIdx:
			return aIdx
		default:
			return keys[i] < keys[j]
		}
	})
	o := &Object[V]{
		values: make(map[string]V, len(m)),
		order:  make([]string, 0, len(m)),
	}
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key and returns o for chaining.
//
// Setting an existing key updates the value in place and keeps the key's
// creation position. Setting a key that was deleted earlier counts as a
// fresh creation: the key re-enters the enumeration at the end of the
// creation-order group.
func (o *Object[V]) Set(key string, value V) *Object[V] {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; !ok {
		o.order = append(o.order, key)
	}
	o.values[key] = value
	return o
}

// Delete removes key from the object and reports whether it was present.
func (o *Object[V]) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.order {
		if k == key {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key together with a presence flag.
// Returns the zero value and false when the key does not exist.
func (o *Object[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key exists in the object.
func (o *Object[V]) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Len returns the number of entries in the object.
func (o *Object[V]) Len() int { return len(o.values) }

// IsEmpty reports whether the object contains no entries.
func (o *Object[V]) IsEmpty() bool { return len(o.values) == 0 }

// IsNotEmpty reports whether the object has at least one entry.
func (o *Object[V]) IsNotEmpty() bool { return len(o.values) > 0 }

// Values returns the values in canonical key order.
func (o *Object[V]) Values() []V {
	keys := o.Keys()
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = o.values[k]
	}
	return out
}

// Entries returns the entries in canonical key order.
func (o *Object[V]) Entries() []Entry[V] {
	keys := o.Keys()
	out := make([]Entry[V], len(keys))
	for i, k := range keys {
		out[i] = Entry[V]{Key: k, Value: o.values[k]}
	}
	return out
}

// ToMap returns the entries as a plain Go map (copied, order forgotten).
func (o *Object[V]) ToMap() map[string]V {
	out := make(map[string]V, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of the object: the key set and creation
// order are copied, the values themselves are not.
func (o *Object[V]) Clone() *Object[V] {
	out := &Object[V]{
		values: make(map[string]V, len(o.values)),
		order:  make([]string, len(o.order)),
	}
	for k, v := range o.values {
		out.values[k] = v
	}
	copy(out.order, o.order)
	return out
}
