package obj_test

import (
	"testing"

	"github.com/hasbyte1/go-object-utils/obj"
)

// FuzzUnmarshalJSON ensures that decoding arbitrary input never panics and
// that anything accepted re-encodes to a stable canonical form.
//
// Run with: go test -fuzz=FuzzUnmarshalJSON ./obj/
func FuzzUnmarshalJSON(f *testing.F) {
	seeds := []string{
		``,
		`null`,
		`{}`,
		`{"a":1}`,
		`{"2":1,"1":2,"foo":3}`,
		`{"nested":{"z":1,"a":[1,{"x":2}]}}`,
		`{"dup":1,"dup":2}`,
		`[1,2]`,
		`{"unterminated":`,
		`{"a":}`,
		"{\"\\u0000\":0}",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		o := obj.New[any]()
		if err := o.UnmarshalJSON(data); err != nil {
			return // rejecting is fine; panicking is not
		}

		// Whatever was accepted must encode, decode again, and encode to
		// the same bytes.
		first, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("Marshal after successful Unmarshal failed: %v", err)
		}
		second := obj.New[any]()
		if err := second.UnmarshalJSON(first); err != nil {
			t.Fatalf("re-decode of own encoding failed: %v\nencoding: %s", err, first)
		}
		again, err := second.MarshalJSON()
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		if string(first) != string(again) {
			t.Fatalf("canonical form not stable:\n first: %s\nsecond: %s", first, again)
		}
	})
}

// FuzzKeys ensures the canonical order always forms the same two groups no
// matter what key is thrown at the object: integer-like keys ascending,
// then the rest in creation order.
func FuzzKeys(f *testing.F) {
	f.Add("0", "foo")
	f.Add("07", "7")
	f.Add("18446744073709551615", "18446744073709551616")
	f.Add("", " ")
	f.Add("10", "9")

	f.Fuzz(func(t *testing.T, first, second string) {
		o := obj.New[int]().Set(first, 1).Set(second, 2)
		keys := o.Keys()
		if len(keys) != o.Len() {
			t.Fatalf("Keys returned %d keys for %d entries", len(keys), o.Len())
		}

		// Group order: once a non-integer-like key appears, no
		// integer-like key may follow.
		inCreationGroup := false
		var prev uint64
		var prevSet bool
		for _, k := range keys {
			n, isIndex := indexValue(k)
			if !isIndex {
				inCreationGroup = true
				continue
			}
			if inCreationGroup {
				t.Fatalf("integer-like key %q after creation-order group: %v", k, keys)
			}
			if prevSet && n < prev {
				t.Fatalf("integer-like keys out of order: %v", keys)
			}
			prev, prevSet = n, true
		}
	})
}

// indexValue mirrors the integer-like key rule for verification: canonical
// base-10, no leading zeros, fits in uint64.
func indexValue(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (1<<64-1-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
