package uatoken

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Security is the encryption strength class carried by older User-Agents.
type Security string

const (
	// SecurityNone marks a client without encryption support ("N").
	SecurityNone Security = "N"
	// SecurityStrong marks a client with strong (US-grade) encryption ("U").
	SecurityStrong Security = "U"
	// SecurityWeak marks a client with international-grade encryption ("I").
	SecurityWeak Security = "I"
)

// Screen is a screen resolution found in a User-Agent.
type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Meta holds the facets that are not part of the token map.
type Meta struct {
	Screen       *Screen
	Security     Security
	Localization string
}

// Tokens is the read-only result of parsing a User-Agent.
type Tokens struct {
	tokens       map[string]Value
	screen       *Screen
	security     Security
	localization string
}

// New builds Tokens from a prebuilt map and metadata. Keys are lowercased;
// the map is copied.
func New(tokens map[string]Value, meta Meta) *Tokens {
	t := &Tokens{
		tokens:       make(map[string]Value, len(tokens)),
		security:     meta.Security,
		localization: strings.ToLower(meta.Localization),
	}
	for k, v := range tokens {
		t.tokens[strings.ToLower(k)] = v
	}
	if meta.Screen != nil {
		s := *meta.Screen
		t.screen = &s
	}
	return t
}

// Lookup returns the value stored for a token. Names are case-insensitive.
func (t *Tokens) Lookup(name string) (Value, bool) {
	v, ok := t.tokens[strings.ToLower(name)]
	return v, ok
}

// Version returns the version stored for a token, or "" when the token is
// absent or has no version.
func (t *Tokens) Version(name string) string {
	v, _ := t.Lookup(name)
	s, _ := v.Version()
	return s
}

// Has reports whether a token is present. With a constraint such as ">=5.0"
// the token must also carry a version satisfying it; see Constraint for the
// accepted operators. Versions are compared as plain strings.
//
//	tokens.Has("mozilla")          // present
//	tokens.Has("mozilla", ">=5.0") // present with a version >= "5.0"
func (t *Tokens) Has(name string, constraint ...string) bool {
	v, ok := t.Lookup(name)
	if !ok {
		return false
	}
	if len(constraint) == 0 {
		return true
	}
	version, ok := v.Version()
	if !ok {
		return false
	}
	return ParseConstraint(constraint[0]).Match(version)
}

// All reports whether every given token is present.
func (t *Tokens) All(names ...string) bool {
	for _, n := range names {
		if _, ok := t.Lookup(n); !ok {
			return false
		}
	}
	return true
}

// Any reports whether at least one of the given tokens is present.
func (t *Tokens) Any(names ...string) bool {
	for _, n := range names {
		if _, ok := t.Lookup(n); ok {
			return true
		}
	}
	return false
}

// Screen returns the screen resolution, if one was found.
func (t *Tokens) Screen() (Screen, bool) {
	if t.screen == nil {
		return Screen{}, false
	}
	return *t.screen, true
}

// Security returns the security class, or "" when none was found.
func (t *Tokens) Security() Security { return t.security }

// Localization returns the locale as "lang" or "lang-region", or "".
func (t *Tokens) Localization() string { return t.localization }

// Language parses the localization facet as a BCP 47 tag.
func (t *Tokens) Language() (language.Tag, bool) {
	if t.localization == "" {
		return language.Und, false
	}
	tag, err := language.Parse(t.localization)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Len returns the number of tokens.
func (t *Tokens) Len() int { return len(t.tokens) }

// Keys returns the token names in sorted order.
func (t *Tokens) Keys() []string {
	return slices.Sorted(maps.Keys(t.tokens))
}

// Map returns a copy of the token map.
func (t *Tokens) Map() map[string]Value {
	return maps.Clone(t.tokens)
}

// Snapshot is the serializable form of Tokens.
type Snapshot struct {
	Tokens       map[string]Value `json:"tokens"`
	Screen       *Screen          `json:"screen,omitempty"`
	Security     Security         `json:"security,omitempty"`
	Localization string           `json:"localization,omitempty"`
}

// Snapshot returns a copy of the tokens and metadata.
func (t *Tokens) Snapshot() Snapshot {
	s := Snapshot{
		Tokens:       t.Map(),
		Security:     t.security,
		Localization: t.localization,
	}
	if t.screen != nil {
		sc := *t.screen
		s.Screen = &sc
	}
	return s
}

// FromSnapshot rebuilds Tokens from a snapshot.
func FromSnapshot(s Snapshot) *Tokens {
	return New(s.Tokens, Meta{
		Screen:       s.Screen,
		Security:     s.Security,
		Localization: s.Localization,
	})
}

// MarshalJSON encodes Tokens as its Snapshot.
func (t *Tokens) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// DecodeSnapshot rebuilds Tokens from the JSON produced by MarshalJSON.
func DecodeSnapshot(data []byte) (*Tokens, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		if errors.Is(err, ErrSnapshotDecode) {
			return nil, err
		}
		return nil, errors.Join(ErrSnapshotDecode, err)
	}
	return FromSnapshot(s), nil
}
