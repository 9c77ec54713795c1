package obj_test

import (
	"testing"

	"github.com/hasbyte1/go-object-utils/obj"
)

func TestKeysCanonicalOrder(t *testing.T) {
	// Integer-like keys ascending first, then creation order.
	o := numbered("2", "1", "foo", "bar")
	assertSlice(t, o.Keys(), []string{"1", "2", "foo", "bar"})
}

func TestKeysIntegerLikeClassification(t *testing.T) {
	// Only the canonical base-10 form of a non-negative integer counts as
	// integer-like; everything else stays in the creation-order group.
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"zero is integer-like", []string{"a", "0"}, []string{"0", "a"}},
		{"leading zero is not", []string{"07", "7"}, []string{"7", "07"}},
		{"double zero is not", []string{"00", "0"}, []string{"0", "00"}},
		{"signed is not", []string{"+1", "1"}, []string{"1", "+1"}},
		{"negative is not", []string{"-3", "3"}, []string{"3", "-3"}},
		{"decimal is not", []string{"1.0", "1"}, []string{"1", "1.0"}},
		{"empty string is not", []string{"", "5"}, []string{"5", ""}},
		{"numeric, not lexicographic", []string{"10", "9", "100"}, []string{"9", "10", "100"}},
		{"uint64 max is integer-like", []string{"a", "18446744073709551615"}, []string{"18446744073709551615", "a"}},
		{"beyond uint64 is not", []string{"18446744073709551616", "1"}, []string{"1", "18446744073709551616"}},
		{"whitespace is not", []string{" 1", "1"}, []string{"1", " 1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertSlice(t, numbered(tc.keys...).Keys(), tc.want)
		})
	}
}

func TestKeysCreationOrderSurvivesInterleaving(t *testing.T) {
	// Non-index keys keep their relative creation order no matter how
	// integer-like keys are interleaved between them.
	o := numbered("x", "3", "y", "1", "z")
	assertSlice(t, o.Keys(), []string{"1", "3", "x", "y", "z"})
}

func TestKeysEmpty(t *testing.T) {
	if got := obj.New[int]().Keys(); len(got) != 0 {
		t.Fatalf("Keys of empty = %v; want empty", got)
	}
}

func TestKeysReturnsFreshSlice(t *testing.T) {
	o := numbered("a", "b")
	keys := o.Keys()
	keys[0] = "mutated"
	assertSlice(t, o.Keys(), []string{"a", "b"})
}

func TestKeysRecomputedAfterMutation(t *testing.T) {
	o := numbered("a", "b", "2")
	assertSlice(t, o.Keys(), []string{"2", "a", "b"})

	o.Delete("a")
	o.Set("a", 9) // fresh creation: back of the creation-order group
	assertSlice(t, o.Keys(), []string{"2", "b", "a"})

	o.Set("1", 1)
	assertSlice(t, o.Keys(), []string{"1", "2", "b", "a"})
}
