package obj

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for *Object[any]
//
// These functions read, write and test values in deeply nested objects using
// dot-separated key paths. They descend through both *Object[any] and plain
// map[string]any children, so objects built by hand and structures decoded
// from JSON mix freely. Writes create *Object[any] intermediates.
//
// Example object:
//
//	o := obj.New[any]()
//	obj.SetPath(o, "user.name", "Alice")
//	obj.SetPath(o, "user.address.city", "London")
//
//	obj.GetPath(o, "user.address.city")  → "London"
//	obj.HasPath(o, "user.name")          → true
//	obj.ForgetPath(o, "user.address")
//
// They are package-level functions because they require V = any, which a
// method cannot constrain.
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested object into a single-level object whose keys use
// dot notation. Keys appear in canonical order at every level, so the
// result is deterministic.
//
//	Dot(o) with o = {"a": {"b": 1}}  →  {"a.b": 1}
func Dot(o *Object[any]) *Object[any] {
	out := New[any]()
	dotFlatten("", o, out)
	return out
}

func dotFlatten(prefix string, o *Object[any], out *Object[any]) {
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case *Object[any]:
			dotFlatten(key, t, out)
		case map[string]any:
			dotFlatten(key, FromMap(t), out)
		default:
			out.Set(key, v)
		}
	}
}

// Undot expands a flat dot-notation object into a nested one.
//
//	Undot(flat) with flat = {"a.b": 1, "a.c": 2}  →  {"a": {"b": 1, "c": 2}}
func Undot(flat *Object[any]) *Object[any] {
	out := New[any]()
	for _, k := range flat.Keys() {
		v, _ := flat.Get(k)
		SetPath(out, k, v)
	}
	return out
}

// GetPath retrieves a value using a dot-notation path.
// Returns def[0] (or nil) when the path does not resolve.
//
//	GetPath(o, "user.address.city")        // "London"
//	GetPath(o, "user.missing", "default")  // "default"
func GetPath(o *Object[any], path string, def ...any) any {
	segments := strings.SplitN(path, ".", 2)
	val, ok := o.Get(segments[0])
	if !ok {
		return fallback(def)
	}
	if len(segments) == 1 {
		return val
	}
	switch t := val.(type) {
	case *Object[any]:
		return GetPath(t, segments[1], def...)
	case map[string]any:
		return getMapPath(t, segments[1], def...)
	default:
		return fallback(def)
	}
}

func getMapPath(m map[string]any, path string, def ...any) any {
	segments := strings.SplitN(path, ".", 2)
	val, ok := m[segments[0]]
	if !ok {
		return fallback(def)
	}
	if len(segments) == 1 {
		return val
	}
	switch t := val.(type) {
	case *Object[any]:
		return GetPath(t, segments[1], def...)
	case map[string]any:
		return getMapPath(t, segments[1], def...)
	default:
		return fallback(def)
	}
}

func fallback(def []any) any {
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// SetPath writes value at the dot-notation path, creating intermediate
// objects as needed. Existing *Object[any] and map[string]any intermediates
// are descended in place; a scalar in the way is replaced by a fresh
// object.
//
//	SetPath(o, "user.address.postcode", "EC1")
func SetPath(o *Object[any], path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		o.Set(path, value)
		return
	}
	seg, rest := segments[0], segments[1]
	cur, _ := o.Get(seg)
	switch t := cur.(type) {
	case *Object[any]:
		SetPath(t, rest, value)
	case map[string]any:
		setMapPath(t, rest, value)
	default:
		nested := New[any]()
		o.Set(seg, nested)
		SetPath(nested, rest, value)
	}
}

func setMapPath(m map[string]any, path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		m[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	switch t := m[seg].(type) {
	case *Object[any]:
		SetPath(t, rest, value)
	case map[string]any:
		setMapPath(t, rest, value)
	default:
		nested := New[any]()
		m[seg] = nested
		SetPath(nested, rest, value)
	}
}

// HasPath reports whether the dot-notation path resolves to a value.
func HasPath(o *Object[any], path string) bool {
	segments := strings.SplitN(path, ".", 2)
	val, ok := o.Get(segments[0])
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	switch t := val.(type) {
	case *Object[any]:
		return HasPath(t, segments[1])
	case map[string]any:
		return hasMapPath(t, segments[1])
	default:
		return false
	}
}

func hasMapPath(m map[string]any, path string) bool {
	segments := strings.SplitN(path, ".", 2)
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	switch t := val.(type) {
	case *Object[any]:
		return HasPath(t, segments[1])
	case map[string]any:
		return hasMapPath(t, segments[1])
	default:
		return false
	}
}

// HasAllPaths reports whether every dot-notation path resolves.
func HasAllPaths(o *Object[any], paths ...string) bool {
	for _, p := range paths {
		if !HasPath(o, p) {
			return false
		}
	}
	return true
}

// HasAnyPath reports whether at least one dot-notation path resolves.
func HasAnyPath(o *Object[any], paths ...string) bool {
	for _, p := range paths {
		if HasPath(o, p) {
			return true
		}
	}
	return false
}

// ForgetPath removes the entry at the dot-notation path.
// Intermediate objects are not cleaned up.
func ForgetPath(o *Object[any], path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		o.Delete(path)
		return
	}
	seg, rest := segments[0], segments[1]
	cur, _ := o.Get(seg)
	switch t := cur.(type) {
	case *Object[any]:
		ForgetPath(t, rest)
	case map[string]any:
		forgetMapPath(t, rest)
	}
}

func forgetMapPath(m map[string]any, path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		delete(m, path)
		return
	}
	seg, rest := segments[0], segments[1]
	switch t := m[seg].(type) {
	case *Object[any]:
		ForgetPath(t, rest)
	case map[string]any:
		forgetMapPath(t, rest)
	}
}
