package uatoken

import (
	"regexp"
	"strings"
)

var (
	// YYYY/MM/DD, slashes optional, bounded by non-digits.
	dateRegex = regexp.MustCompile(`(^|\D)((?:19|20)\d{2})/?(0\d|1[0-2])/?([0-2]\d|3[01])(\D|$)`)

	// UAs glued together without spaces: ")/Name" or four+ slash-joined runs.
	sparseRegex      = regexp.MustCompile(`\)/[a-zA-Z]|([^\s]+/){4,}`)
	sparseDelimRegex = regexp.MustCompile(`([0-9A-Z])([A-Z][a-z])|\)/`)

	// A versioned product (or closing bracket) followed by whitespace or ';'.
	productDelimRegex = regexp.MustCompile(`(/[^\s;]+|[\)\]])[\s;]+(\w)`)

	screenRegex    = regexp.MustCompile(`\d{2,4}[xX*]\d{2,4}`)
	partSplitRegex = regexp.MustCompile(`\s*[;()\[\],]+\s*`)
)

// Split breaks a raw User-Agent string into its ordered parts: product
// tokens, comment fragments, locale and screen hints.
//
//	uatoken.Split("Opera/9.5 (Windows CE; U; en) 240x400")
//	// ["Opera/9.5", "Windows CE", "U", "en", "240x400"]
//
// Empty parts are discarded. Split never fails; a string without any
// delimiters is returned as a single part.
func Split(ua string) []string {
	ua = normalizeDates(ua)

	if sparseRegex.MatchString(ua) {
		ua = sparseDelimRegex.ReplaceAllString(ua, "${1};${2}")
	} else {
		ua = productDelimRegex.ReplaceAllString(ua, "${1};${2}")
	}

	ua = screenRegex.ReplaceAllString(ua, ";${0};")

	raw := partSplitRegex.Split(ua, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// normalizeDates rewrites YYYY/MM/DD into YYYY.MM.DD so that slash splitting
// keeps a date in one piece.
func normalizeDates(ua string) string {
	return dateRegex.ReplaceAllString(ua, "${1}${2}.${3}.${4}${5}")
}
