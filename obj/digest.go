package obj

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the object's
// canonical JSON encoding.
//
// Because the encoding enumerates integer-like keys numerically, two
// objects holding the same entries share a fingerprint no matter how their
// integer-like keys were interleaved at creation; remaining keys still
// distinguish by creation order, as they do in every enumeration. The
// fingerprint is a cheap content identity for caching and change
// detection, not a cryptographic commitment to the value types: values are
// compared as their JSON forms.
func (o *Object[V]) Fingerprint() (string, error) {
	b, err := o.MarshalJSON()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
