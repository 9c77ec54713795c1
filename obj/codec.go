package obj

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON encoding and decoding.
//
// Marshalling emits entries in canonical key order, so the encoding of a
// given object is deterministic. Unmarshalling preserves the document's key
// order as the creation order, so a decode/encode round trip keeps keys
// where the document put them (the detail a map[string]any decode loses).

// MarshalJSON implements [json.Marshaler]. Entries are encoded in canonical
// key order.
func (o *Object[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON is an alias for [Object.MarshalJSON].
func (o *Object[V]) ToJSON() ([]byte, error) { return o.MarshalJSON() }

// UnmarshalJSON implements [json.Unmarshaler]. The input must be a JSON
// object or null; null leaves an empty object.
//
// Document order becomes creation order. A duplicated key keeps its first
// position and its last value, matching how JavaScript evaluates an object
// literal. When V is any, nested JSON objects decode into nested
// *Object[any] values (and arrays into []any), so deep structures keep
// their order too; other value types decode with encoding/json's usual
// rules.
//
// The receiver is replaced wholesale: on success only the document's
// entries remain, and on failure the receiver is left unchanged.
func (o *Object[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null
		*o = *New[V]()
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("obj: cannot unmarshal %v into an object", tok)
	}

	out := New[V]()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("obj: object key %v is not a string", keyTok)
		}
		v, err := decodeValue[V](dec)
		if err != nil {
			return err
		}
		out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // consume the closing brace
		return err
	}

	*o = *out
	return nil
}

// decodeValue decodes the next value from dec as a V. When V is any it
// routes through decodeAny so nested objects keep their key order instead
// of collapsing into unordered map[string]any values.
func decodeValue[V any](dec *json.Decoder) (V, error) {
	var v V
	if p, ok := any(&v).(*any); ok {
		raw, err := decodeAny(dec)
		if err != nil {
			return v, err
		}
		*p = raw
		return v, nil
	}
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// decodeAny decodes the next value from dec into *Object[any], []any,
// string, float64, bool or nil.
func decodeAny(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, float64, bool or nil
	}
	switch delim {
	case '{':
		nested := New[any]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("obj: object key %v is not a string", keyTok)
			}
			v, err := decodeAny(dec)
			if err != nil {
				return nil, err
			}
			nested.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			v, err := decodeAny(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("obj: unexpected delimiter %q", delim)
	}
}

// String returns the canonical JSON representation of the object.
// It implements [fmt.Stringer].
func (o *Object[V]) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", o.values)
	}
	return string(b)
}
