package uatoken

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// DefaultMaxTokenLength is the length above which a product token is dropped.
const DefaultMaxTokenLength = 25

// Abbreviations and spelling variants mapped to a single token name.
// Keys may be compounds of two words.
var defaultCanonical = map[string]string{
	"black_berry": "blackberry",
	"crios":       "chrome",
	"fb":          "facebook",
	"lge":         "lg",
	"mot":         "motorolla",
	"s40":         "series_40",
	"s60":         "series_60",
	"sam":         "samsung",
	"symb":        "symbian",
}

// Words too common to identify anything on their own. They still take part
// in compounds ("windows_phone", "like_gecko").
var defaultStoplist = []string{
	"mobile", "browser", "os", "cpu", "x", "like", "web", "phone", "for",
}

// Rules is the token filtering strategy used by the product extractor:
// canonical names, the stoplist and the maximum token length.
// A Rules value is immutable once built and safe for concurrent use.
type Rules struct {
	canonical      map[string]string
	stoplist       map[string]struct{}
	maxTokenLength int
}

var defaultRules = NewRules()

// DefaultRules returns the built-in rule set used by Parse and ParseProduct.
func DefaultRules() *Rules { return defaultRules }

// RuleOption configures a Rules value.
type RuleOption func(*Rules)

// WithCanonical adds or overrides canonical name mappings.
// Keys and values are lowercased.
func WithCanonical(m map[string]string) RuleOption {
	return func(r *Rules) {
		for k, v := range m {
			r.canonical[strings.ToLower(k)] = strings.ToLower(v)
		}
	}
}

// WithStopwords adds words to the stoplist.
func WithStopwords(words ...string) RuleOption {
	return func(r *Rules) {
		for _, w := range words {
			r.stoplist[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithoutDefaults drops the built-in canonical table and stoplist.
// It must come before any option that adds entries.
func WithoutDefaults() RuleOption {
	return func(r *Rules) {
		clear(r.canonical)
		clear(r.stoplist)
	}
}

// WithMaxTokenLength sets the length above which tokens are dropped.
func WithMaxTokenLength(n int) RuleOption {
	if n <= 0 {
		panic("WithMaxTokenLength: length must be > 0")
	}
	return func(r *Rules) { r.maxTokenLength = n }
}

// NewRules builds a rule set from the built-in defaults and the given options.
func NewRules(opts ...RuleOption) *Rules {
	r := &Rules{
		canonical:      maps.Clone(defaultCanonical),
		stoplist:       make(map[string]struct{}, len(defaultStoplist)),
		maxTokenLength: DefaultMaxTokenLength,
	}
	for _, w := range defaultStoplist {
		r.stoplist[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// rulesFile is the YAML layout accepted by LoadRules.
type rulesFile struct {
	Replace        bool              `yaml:"replace"`
	Canonical      map[string]string `yaml:"canonical"`
	Stoplist       []string          `yaml:"stoplist"`
	MaxTokenLength int               `yaml:"max_token_length"`
}

// LoadRules reads a YAML rule document and returns the resulting rule set.
// Entries extend the built-in tables unless "replace: true" is set.
//
//	replace: false
//	max_token_length: 30
//	canonical:
//	  moto: motorola
//	stoplist: [build, linux]
func LoadRules(r io.Reader) (*Rules, error) {
	var f rulesFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrRulesDecode, err)
	}

	for k, v := range f.Canonical {
		if !validTokenName(k) || !validTokenName(v) {
			return nil, errors.Join(ErrInvalidRules, fmt.Errorf("canonical mapping %q -> %q", k, v))
		}
	}
	for _, w := range f.Stoplist {
		if !validTokenName(w) {
			return nil, errors.Join(ErrInvalidRules, fmt.Errorf("stopword %q", w))
		}
	}
	if f.MaxTokenLength < 0 {
		return nil, errors.Join(ErrInvalidRules, fmt.Errorf("max_token_length %d", f.MaxTokenLength))
	}

	opts := make([]RuleOption, 0, 4)
	if f.Replace {
		opts = append(opts, WithoutDefaults())
	}
	opts = append(opts, WithCanonical(f.Canonical), WithStopwords(f.Stoplist...))
	if f.MaxTokenLength > 0 {
		opts = append(opts, WithMaxTokenLength(f.MaxTokenLength))
	}
	return NewRules(opts...), nil
}

// Canonical returns the canonical name for a token, or the token itself.
func (r *Rules) Canonical(token string) string {
	if c, ok := r.canonical[token]; ok {
		return c
	}
	return token
}

// IsStopword reports whether a token is too common to be recorded alone.
func (r *Rules) IsStopword(token string) bool {
	_, ok := r.stoplist[token]
	return ok
}

// MaxTokenLength returns the length above which tokens are dropped.
func (r *Rules) MaxTokenLength() int { return r.maxTokenLength }

func (r *Rules) tooLong(token string) bool {
	return len(token) > r.maxTokenLength
}

// keep reports whether a single token is recorded in the product map.
func (r *Rules) keep(token string) bool {
	return !r.IsStopword(token) && !isNumeric(token)
}

func validTokenName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if unicode.IsSpace(c) || c == '/' {
			return false
		}
	}
	return true
}
