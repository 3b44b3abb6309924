package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldKind describes the shape a form field arrived in.
type FieldKind int

// Field kind constants
const (
	FieldAbsent FieldKind = iota
	FieldScalar
	FieldList
)

// Field is a request value that may arrive either as a single string or as a
// list of strings. The shape is resolved once when the payload is decoded.
type Field struct {
	Kind   FieldKind
	Values []string
}

// Scalar builds a single-valued field.
func Scalar(s string) Field {
	return Field{Kind: FieldScalar, Values: []string{s}}
}

// List builds a list-valued field.
func List(values ...string) Field {
	return Field{Kind: FieldList, Values: values}
}

// UnmarshalJSON accepts a string, an array of strings, null, or any other JSON
// scalar (kept as its literal text).
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Field{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Scalar(s)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			var inner Field
			if err := inner.UnmarshalJSON(item); err != nil {
				return err
			}
			if inner.Kind != FieldAbsent {
				values = append(values, inner.String())
			}
		}
		*f = List(values...)
	case '{':
		// Objects are not a form shape; keep the JSON text so nothing is lost.
		*f = Scalar(string(data))
	default:
		*f = Scalar(string(data))
	}
	return nil
}

// MarshalJSON echoes the field in the shape it arrived in.
func (f Field) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FieldList:
		if f.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(f.Values)
	case FieldScalar:
		return json.Marshal(f.String())
	default:
		return []byte(`""`), nil
	}
}

// String returns the canonical text of the field. List values are joined
// with ", ".
func (f Field) String() string {
	return strings.Join(f.Values, ", ")
}

// IsBlank reports whether the field carries no usable text.
func (f Field) IsBlank() bool {
	return strings.TrimSpace(f.String()) == ""
}

// Payload is a decoded request body: named fields, every one optional.
type Payload map[string]Field

// Get returns the named field, or an absent field.
func (p Payload) Get(name string) Field {
	if p == nil {
		return Field{}
	}
	return p[name]
}

// Text returns the canonical text of the named field.
func (p Payload) Text(name string) string {
	return p.Get(name).String()
}

// Normalize resolves every field to its canonical string form.
func (p Payload) Normalize() map[string]string {
	out := make(map[string]string, len(p))
	for name, f := range p {
		out[name] = f.String()
	}
	return out
}
