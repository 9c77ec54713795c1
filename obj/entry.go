package obj

import "fmt"

// Entry holds one key-value pair of an [Object].
// It is the element type consumed by [New] and [FromEntries] and produced
// by [Object.Entries].
//
// Portability note: in JavaScript this maps to the [key, value] pairs
// produced by Object.entries; in Python to dict.items() tuples.
type Entry[V any] struct {
	Key   string
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[V]) String() string {
	return fmt.Sprintf("(%s, %v)", e.Key, e.Value)
}
