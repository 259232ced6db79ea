package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexList is a slice that can be unmarshaled from either a single JSON object or a JSON array.
type FlexList[T any] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = nil
		return nil
	}

	if data[0] == '[' {
		var slice []T
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*f = FlexList[T](slice)
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexList[T]{item}
	return nil
}

// Slice converts FlexList[T] back to []T.
func (f FlexList[T]) Slice() []T {
	return []T(f)
}

// FlexUint64 is a uint64 that can be unmarshaled from either a JSON number or a JSON string.
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexUint64: invalid uint64 string %q: %w", s, err)
		}
		*f = FlexUint64(val)
		return nil
	}

	return fmt.Errorf("FlexUint64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 converts FlexUint64 back to uint64.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}

// Ptr returns a pointer to a FlexUint64 holding v.
func Ptr(v uint64) *FlexUint64 {
	f := FlexUint64(v)
	return &f
}

// FlexString is a string that can be unmarshaled from either a JSON string or a JSON number.
type FlexString string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("FlexString: unexpected type, expected string or number")
}

func (f FlexString) String() string {
	return string(f)
}

// FlexJSON holds a JSON document that callers may send either inline or
// encoded as a JSON string. Raw is the document text; Present reports whether
// the key appeared at all.
type FlexJSON struct {
	Raw     []byte
	Present bool
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexJSON) UnmarshalJSON(data []byte) error {
	f.Present = true
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		f.Raw = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.Raw = []byte(s)
		return nil
	}

	f.Raw = append([]byte(nil), data...)
	return nil
}

// Blank reports whether no document text was supplied.
func (f FlexJSON) Blank() bool {
	return len(bytes.TrimSpace(f.Raw)) == 0
}

func (f FlexJSON) String() string {
	return string(f.Raw)
}
