package obj

// Callback types shared by the traversal operations.
//
// Every callback receives the same positional arguments: the current value,
// its key, and a live reference to the object being traversed (Reduce
// callbacks take the running accumulator first). The object reference is the
// original, not a copy: a callback may read or mutate it mid-traversal; see
// the package documentation for how mutation interacts with an in-progress
// scan.
//
// Callbacks fail by returning a non-nil error. The operation stops at the
// failing entry and returns that error to its caller unchanged, so sentinel
// errors defined by the caller survive errors.Is checks across the
// operation boundary.

// VisitFunc is the callback type of [ForEach].
type VisitFunc[V any] func(value V, key string, o *Object[V]) error

// MapFunc is the callback type of [Map]. It transforms one value of type V
// into one of type U.
type MapFunc[V, U any] func(value V, key string, o *Object[V]) (U, error)

// Predicate is the callback type of [Filter], [Some] and [Every].
type Predicate[V any] func(value V, key string, o *Object[V]) (bool, error)

// ReduceFunc is the callback type of [Reduce]. It folds the current entry
// into the accumulator and returns the next accumulator value.
type ReduceFunc[V, A any] func(acc A, value V, key string, o *Object[V]) (A, error)

// ─────────────────────────────────────────────────────────────────────────────
// Receiver binding
// ─────────────────────────────────────────────────────────────────────────────

// BindVisit fixes recv as the receiver of a method-shaped visit function,
// producing a plain [VisitFunc].
//
// A Go method expression such as (*Tally).Add has exactly the fn shape, so a
// method can be handed to [ForEach] with its receiver chosen per call:
//
//	t := &Tally{}
//	err := obj.ForEach(o, obj.BindVisit(t, (*Tally).Add))
//
// The receiver travels as an explicit value rather than ambient state, so
// the same method can be bound to different receivers in different calls.
func BindVisit[R, V any](recv R, fn func(R, V, string, *Object[V]) error) VisitFunc[V] {
	return func(value V, key string, o *Object[V]) error {
		return fn(recv, value, key, o)
	}
}

// BindMap fixes recv as the receiver of a method-shaped transform function,
// producing a plain [MapFunc].
func BindMap[R, V, U any](recv R, fn func(R, V, string, *Object[V]) (U, error)) MapFunc[V, U] {
	return func(value V, key string, o *Object[V]) (U, error) {
		return fn(recv, value, key, o)
	}
}

// BindPredicate fixes recv as the receiver of a method-shaped predicate,
// producing a plain [Predicate].
func BindPredicate[R, V any](recv R, fn func(R, V, string, *Object[V]) (bool, error)) Predicate[V] {
	return func(value V, key string, o *Object[V]) (bool, error) {
		return fn(recv, value, key, o)
	}
}
