// Package model defines the data structures shared by the scan session,
// the engine adapter and the renderers.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueType identifies the numeric representation a scan operates over.
type ValueType string

// The ten value types understood by the engine. The string form is the
// lowercase suffix used in engine command names.
const (
	I8  ValueType = "i8"
	U8  ValueType = "u8"
	I16 ValueType = "i16"
	U16 ValueType = "u16"
	I32 ValueType = "i32"
	U32 ValueType = "u32"
	I64 ValueType = "i64"
	U64 ValueType = "u64"
	F32 ValueType = "f32"
	F64 ValueType = "f64"
)

// AllValueTypes lists every value type in declaration order.
var AllValueTypes = []ValueType{I8, U8, I16, U16, I32, U32, I64, U64, F32, F64}

// Token returns the enum token the engine expects in a valueType argument (e.g. "I32").
func (v ValueType) Token() string {
	return strings.ToUpper(string(v))
}

// ParseValueType accepts either the command suffix ("i32") or the enum token ("I32").
func ParseValueType(s string) (ValueType, error) {
	candidate := ValueType(strings.ToLower(strings.TrimSpace(s)))
	for _, vt := range AllValueTypes {
		if vt == candidate {
			return vt, nil
		}
	}

	return "", fmt.Errorf("unknown value type %q", s)
}

// Value is a numeric value carried as its decimal literal so that 64-bit
// integers survive the trip through JSON without float rounding.
type Value string

// String returns the literal.
func (v Value) String() string {
	return string(v)
}

// MarshalJSON writes the literal as a bare JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}

	var n json.Number
	if err := json.Unmarshal([]byte(v), &n); err != nil {
		return nil, fmt.Errorf("value %q is not a JSON number", string(v))
	}

	return []byte(v), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = Value(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value is not a number: %w", err)
	}

	*v = Value(n.String())

	return nil
}
