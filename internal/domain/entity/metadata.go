package entity

import (
	"bytes"
	"encoding/json"

	"scrobbler/internal/errors"
)

// ErrMetadataNotObject is returned when metadata is decoded from anything but a JSON object.
var ErrMetadataNotObject = errors.New("metadata must be a JSON object")

// Field is a single metadata entry. Value is kept as raw JSON and never interpreted.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Metadata is an ordered mapping of keys to opaque JSON values.
// Keys keep the order in which they were first seen; updating a key keeps its position.
// The zero value is an empty mapping ready to use.
type Metadata struct {
	fields []Field
}

// NewMetadata builds metadata from fields, applying Set semantics for duplicate keys.
func NewMetadata(fields ...Field) Metadata {
	var m Metadata
	for _, f := range fields {
		m.SetRaw(f.Key, f.Value)
	}

	return m
}

// Len returns the number of keys.
func (m Metadata) Len() int {
	return len(m.fields)
}

// Keys returns the keys in order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		keys = append(keys, f.Key)
	}

	return keys
}

// Fields returns a copy of the entries in order.
func (m Metadata) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)

	return out
}

// Get returns the raw value stored under key.
func (m Metadata) Get(key string) (json.RawMessage, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

// Has reports whether key is present.
func (m Metadata) Has(key string) bool {
	_, ok := m.Get(key)

	return ok
}

// SetRaw stores a raw JSON value under key.
func (m *Metadata) SetRaw(key string, value json.RawMessage) {
	stored := append(json.RawMessage(nil), value...)
	for i := range m.fields {
		if m.fields[i].Key == key {
			m.fields[i].Value = stored

			return
		}
	}
	m.fields = append(m.fields, Field{Key: key, Value: stored})
}

// Set marshals value and stores it under key.
func (m *Metadata) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal metadata field %q", key)
	}
	m.SetRaw(key, raw)

	return nil
}

// Without returns a copy of m with the given keys removed.
func (m Metadata) Without(keys ...string) Metadata {
	out := Metadata{fields: make([]Field, 0, len(m.fields))}
	for _, f := range m.fields {
		drop := false
		for _, key := range keys {
			if f.Key == key {
				drop = true

				break
			}
		}
		if !drop {
			out.fields = append(out.fields, f)
		}
	}

	return out
}

// Clone returns a copy that shares no slices with m.
func (m Metadata) Clone() Metadata {
	out := Metadata{fields: make([]Field, 0, len(m.fields))}
	for _, f := range m.fields {
		out.fields = append(out.fields, Field{Key: f.Key, Value: append(json.RawMessage(nil), f.Value...)})
	}

	return out
}

// MarshalJSON writes the fields as a JSON object in order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")

			continue
		}
		if err := json.Compact(&buf, f.Value); err != nil {
			return nil, errors.Wrapf(err, "metadata field %q", f.Key)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order. A JSON null yields empty metadata.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		m.fields = nil

		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return errors.WithStack(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrMetadataNotObject
	}

	var out Metadata
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return ErrMetadataNotObject
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "metadata field %q", key)
		}
		out.SetRaw(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return errors.WithStack(err)
	}

	m.fields = out.fields

	return nil
}
