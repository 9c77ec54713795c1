package obj

import "fmt"

// This file contains the six traversal and aggregation operations. All of
// them are package-level generic functions rather than methods: Map and
// Reduce introduce a second type parameter, which Go methods cannot do, and
// the remaining four stay package-level so the whole set reads uniformly.
//
// Every operation follows the same scan discipline:
//
//  1. A nil callback fails immediately with [ErrNilCallback], before any
//     entry is visited.
//  2. The canonical key order is snapshotted once, at the start.
//  3. Each snapshotted key is re-read at visit time: entries deleted by an
//     earlier callback are skipped, values reassigned by an earlier
//     callback are seen in their current state, and entries added after the
//     scan started are never visited.
//  4. A callback error aborts the scan at that entry and is returned to the
//     caller unchanged. Map and Filter return no partial output alongside
//     an error.

// ForEach calls fn once for every entry in canonical key order.
// The callback's results are not collected; its only outputs are side
// effects and the optional error.
//
//	err := obj.ForEach(o, func(v int, k string, _ *obj.Object[int]) error {
//	    fmt.Println(k, v)
//	    return nil
//	})
func ForEach[V any](o *Object[V], fn VisitFunc[V]) error {
	if fn == nil {
		return ErrNilCallback
	}
	for _, k := range o.Keys() {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		if err := fn(v, k, o); err != nil {
			return err
		}
	}
	return nil
}

// Map applies fn to every entry and returns a new Object[U] with the same
// keys in the same canonical order and the transformed values.
//
//	lengths, err := obj.Map(o, func(s string, _ string, _ *obj.Object[string]) (int, error) {
//	    return len(s), nil
//	})
func Map[V, U any](o *Object[V], fn MapFunc[V, U]) (*Object[U], error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	out := New[U]()
	for _, k := range o.Keys() {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		u, err := fn(v, k, o)
		if err != nil {
			return nil, err
		}
		out.Set(k, u)
	}
	return out, nil
}

// Filter returns a new Object with only the entries for which fn returns
// true. Keys and values are carried over untouched and keep their relative
// canonical order; the result shares no state with the input.
//
//	evens, err := obj.Filter(o, func(n int, _ string, _ *obj.Object[int]) (bool, error) {
//	    return n%2 == 0, nil
//	})
func Filter[V any](o *Object[V], fn Predicate[V]) (*Object[V], error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	out := New[V]()
	for _, k := range o.Keys() {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		keep, err := fn(v, k, o)
		if err != nil {
			return nil, err
		}
		if keep {
			out.Set(k, v)
		}
	}
	return out, nil
}

// Reduce folds the entries into a single accumulator value of type A,
// visiting them in canonical key order.
//
// With an initial value the accumulator starts there and every entry is
// visited:
//
//	sum, err := obj.Reduce(o, func(acc, n int, _ string, _ *obj.Object[int]) (int, error) {
//	    return acc + n, nil
//	}, 0)
//
// Without one, the first entry's value seeds the accumulator and is not
// itself passed to fn; reducing an empty object this way fails with
// [ErrEmptyReduce]. Seeding requires the first value to be usable as an A
// (in practice A and V are the same type, or A is an interface the value
// satisfies); otherwise Reduce reports the mismatch as an error.
func Reduce[V, A any](o *Object[V], fn ReduceFunc[V, A], initial ...A) (A, error) {
	var zero A
	if fn == nil {
		return zero, ErrNilCallback
	}
	if len(initial) > 1 {
		return zero, fmt.Errorf("%w: got %d", ErrTooManyInitials, len(initial))
	}

	keys := o.Keys()
	var acc A
	start := 0
	if len(initial) == 1 {
		acc = initial[0]
	} else {
		if len(keys) == 0 {
			return zero, ErrEmptyReduce
		}
		first, _ := o.Get(keys[0])
		seed, ok := seedAccumulator[V, A](first)
		if !ok {
			return zero, fmt.Errorf("obj: cannot seed %T accumulator from %T value; pass an initial value", zero, first)
		}
		acc = seed
		start = 1
	}

	for _, k := range keys[start:] {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		next, err := fn(acc, v, k, o)
		if err != nil {
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// seedAccumulator converts the first value of a seed-from-first Reduce into
// the accumulator type. The pointer assertion handles A == V exactly,
// including nil interface values; the value assertion handles a concrete V
// seeding an interface-typed A.
func seedAccumulator[V, A any](v V) (A, bool) {
	if p, ok := any(&v).(*A); ok {
		return *p, true
	}
	if a, ok := any(v).(A); ok {
		return a, true
	}
	var zero A
	return zero, false
}

// Some reports whether at least one entry satisfies fn. The scan stops at
// the first entry for which fn returns true; entries after it are never
// visited. An empty object yields false.
func Some[V any](o *Object[V], fn Predicate[V]) (bool, error) {
	if fn == nil {
		return false, ErrNilCallback
	}
	for _, k := range o.Keys() {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		hit, err := fn(v, k, o)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

// Every reports whether all entries satisfy fn. The scan stops at the first
// entry for which fn returns false; entries after it are never visited. An
// empty object yields true.
func Every[V any](o *Object[V], fn Predicate[V]) (bool, error) {
	if fn == nil {
		return false, ErrNilCallback
	}
	for _, k := range o.Keys() {
		v, ok := o.Get(k)
		if !ok {
			continue
		}
		hit, err := fn(v, k, o)
		if err != nil {
			return false, err
		}
		if !hit {
			return false, nil
		}
	}
	return true, nil
}
