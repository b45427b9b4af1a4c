// Package uatoken decomposes HTTP User-Agent strings into a queryable set of
// normalized tokens, without a database of known devices or browsers.
//
// Instead of matching a UA against curated patterns, the package takes the
// string apart: it segments it into parts, splits each part into lowercase
// words (undoing camel case and letter/digit runs), joins adjacent words into
// compound tokens and pairs the words with the versions that follow them.
// Three facets are pulled out on the side: screen resolution, the legacy
// security class (N, U, I) and the most specific locale.
//
// The result is heuristic. Unknown or malformed strings never fail, they
// simply produce rougher tokens.
//
// # Architecture
//
// Parse runs a pipeline of small, independently usable functions:
//
//	┌───────┐  parts  ┌──────────────┐  facets   ┌──────────┐
//	│ Split │────────▶│  metadata    │──────────▶│          │
//	└───────┘         └──────────────┘           │          │
//	                         │ other parts       │  Tokens  │
//	                         ▼                   │          │
//	                  ┌──────────────┐  tokens   │          │
//	                  │ ParseProduct │──────────▶│          │
//	                  └──────────────┘           └──────────┘
//	                         │
//	                         ▼
//	                  Words / Tokenize
//
// Split lives in segment.go, Words and Tokenize in tokenize.go, ParseProduct
// in product.go, and the metadata classifier next to Parse in parser.go. The
// product extractor consults a Rules value (rules.go) for canonical names,
// the stoplist and the maximum token length; DefaultRules is used unless a
// custom set is built with NewRules or LoadRules.
//
// # Usage
//
//	import "github.com/dmitrymomot/uatoken/pkg/uatoken"
//
//	tokens := uatoken.Parse("Mozilla/5.0 (Linux; U; Android 2.3.5; en-us) " +
//		"AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1")
//
//	tokens.Has("android")            // true
//	tokens.Has("android", ">=2.3")   // true
//	tokens.Version("apple_webkit")   // "533.1"
//	tokens.Localization()            // "en-us"
//	tokens.Security()                // uatoken.SecurityStrong
//	tokens.Any("opera", "safari")    // true
//
// Token names are lowercase; multi-word names are joined with "_"
// ("apple_webkit", "like_gecko", "sony_ericsson").
//
// # Version constraints
//
// Has accepts an optional constraint: "<", "<=", ">", ">=", "=", "==" or the
// pessimistic "~>". Versions are compared as plain strings, so "9.0" sorts
// after "10.0". This is intentional and kept for compatibility.
//
// # Precedence
//
// Parts are processed left to right. The first version seen for a token wins;
// a token recorded without a version can later gain one. The last screen
// resolution wins, the first security class wins and the most specific locale
// wins.
//
// # HTTP
//
// Middleware and MiddlewareWith store the parsed tokens of each request in
// its context; read them back with FromContext.
//
// # Concurrency
//
// All functions are pure. Compiled expressions and the default rule set are
// built once at package initialization and never mutated, so Parse may be
// called from any number of goroutines.
package uatoken
