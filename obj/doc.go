// Package obj provides a generic, order-aware Object container and
// standalone traversal operations over it, inspired by JavaScript's object
// and array iteration methods.
//
// # Overview
//
// The central type is [Object][V], a string-keyed container that remembers
// when each key was first created. Six package-level operations walk it:
//
//	o := obj.New[int]().Set("2", 20).Set("1", 10).Set("foo", 1).Set("bar", 2)
//
//	sum, _ := obj.Reduce(o, func(acc, n int, _ string, _ *obj.Object[int]) (int, error) {
//	    return acc + n, nil
//	}, 0)
//
//	evens, _ := obj.Filter(o, func(n int, _ string, _ *obj.Object[int]) (bool, error) {
//	    return n%2 == 0, nil
//	})
//
// # Key order
//
// Every enumeration ([Object.Keys], [Object.Values], [Object.Entries], the
// six operations, and the JSON encoding) uses one canonical order:
//
//  1. Keys that are canonical non-negative integers ("0", "7", "42"; no
//     sign, no leading zeros, within uint64) come first, in ascending
//     numeric order.
//  2. Every other key follows in the order it was first created.
//
// This mirrors the own-property enumeration order of JavaScript objects.
// Deleting a key and setting it again counts as a fresh creation.
//
// # Mutability
//
// Object is mutable and not safe for concurrent use. Callbacks receive a
// live reference to the object being traversed and may mutate it: each
// operation snapshots the key order once when it starts, then re-reads every
// key at visit time. Entries deleted mid-scan are skipped, values
// reassigned mid-scan are seen in their new state, and entries added
// mid-scan are not visited.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so the
// operations live at package level. [Map] and [Reduce] could not be methods,
// and the rest follow for uniformity:
//
//	lengths, _ := obj.Map(words, func(w string, _ string, _ *obj.Object[string]) (int, error) {
//	    return len(w), nil
//	})
//
// # Receiver binding
//
// Callbacks that are conceptually methods can be bound to a receiver with
// [BindVisit], [BindMap] and [BindPredicate]; a Go method expression has
// exactly the required shape:
//
//	t := &Tally{}
//	_ = obj.ForEach(o, obj.BindVisit(t, (*Tally).Add))
//
// # Errors
//
// Operations fail with [ErrNilCallback] for a nil callback and Reduce with
// [ErrEmptyReduce] when an empty object is reduced without an initial
// value. A callback's own error aborts the scan and is returned to the
// caller unchanged.
//
// # Portability
//
// The API maps 1-to-1 to common iteration idioms elsewhere:
//
//   - JavaScript: Array.prototype forEach/map/filter/reduce/some/every
//     applied over Object.entries; Object.keys/values/entries
//   - lodash: _.forEach, _.mapValues, _.pickBy, _.get, _.set
//   - Laravel: Arr::dot, Arr::undot, Arr::get, Arr::set, Arr::has
package obj
