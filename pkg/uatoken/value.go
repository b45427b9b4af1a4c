package uatoken

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Value is what a token maps to: a version string or bare presence.
// The zero Value means present without a version.
type Value struct {
	version string
}

// Present returns a Value that marks a token as present without a version.
func Present() Value { return Value{} }

// Versioned returns a Value carrying a version. An empty version yields
// Present().
func Versioned(version string) Value { return Value{version: version} }

// Version returns the version string and whether there is one.
func (v Value) Version() (string, bool) { return v.version, v.version != "" }

// IsVersion reports whether the value carries a version.
func (v Value) IsVersion() bool { return v.version != "" }

// String returns the version, or "true" for bare presence.
func (v Value) String() string {
	if v.version == "" {
		return "true"
	}
	return v.version
}

// MarshalJSON encodes a version as a JSON string and presence as true.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.version == "" {
		return []byte("true"), nil
	}
	return json.Marshal(v.version)
}

// UnmarshalJSON accepts a JSON string or true.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("true")) {
		*v = Present()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Join(ErrSnapshotDecode, err)
	}
	*v = Versioned(s)
	return nil
}
