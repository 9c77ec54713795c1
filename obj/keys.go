package obj

import (
	"sort"
	"strconv"
)

// parseIndex reports whether s is an integer-like key (the canonical
// base-10 form of a non-negative integer) and returns its numeric value.
//
// Canonical means no sign, no leading zeros ("0" itself is fine), digits
// only, and a value that fits in a uint64. "7" and "0" qualify; "07", "+1",
// "1.0", "-3" and digit strings beyond 2^64-1 do not.
func parseIndex(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Keys returns the object's keys in canonical order: integer-like keys
// first, ascending numerically, then every other key in the order it was
// first created.
//
// The order is recomputed from the current contents on each call, never
// cached, and the returned slice is fresh, so callers may keep or mutate it
// freely. This is the enumeration order used by every traversal operation
// and by the JSON encoding.
func (o *Object[V]) Keys() []string {
	idx := make([]string, 0, len(o.order))
	rest := make([]string, 0, len(o.order))
	for _, k := range o.order {
		if _, ok := parseIndex(k); ok {
			idx = append(idx, k)
		} else {
			rest = append(rest, k)
		}
	}
	sort.Slice(idx, func(i, j int) bool {
		a, _ := parseIndex(idx[i])
		b, _ := parseIndex(idx[j])
		return a < b
	})
	return append(idx, rest...)
}
