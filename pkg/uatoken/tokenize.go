package uatoken

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	versionSepRegex = regexp.MustCompile(`(\d)_(\d)`)

	// Boundary matchers, applied in this order. Each pass sees the output of
	// the previous one.
	boundaryRegexes = []*regexp.Regexp{
		// Non-lowercase first: "FBForIPhone", "HPiPAQ", "IEMobile".
		regexp.MustCompile(`([A-Z](?:[A-Z]|\d+))(?:[Ff]or)?([a-z][^a-z]|[A-Z]{1,2}[a-z\d]{2,})`),
		// Lowercase or pre-underscored first: "webOS", "SonyEricsson".
		regexp.MustCompile(`(_[A-Z][a-z]+|[a-z]{3,})([\dA-Z])`),
		// Suffix: "S60V5", "A20V1.0".
		regexp.MustCompile(`(\d)([a-zA-Z]+\d)`),
		// Upper-case prefix: "LGC300", "UCWEB7".
		regexp.MustCompile(`([A-Z]{3,})(\d)`),
	}

	innerPunctRegex = regexp.MustCompile(`([a-z])\W([a-z])`)

	versionRegex = regexp.MustCompile(`(?i)^(v?(\d+\.)+\d+|v\d+)$`)
	numericRegex = regexp.MustCompile(`^\d+$`)
)

// Words normalizes a fragment and splits it into lowercase words without
// compounding.
//
//	uatoken.Words("SonyEricssonCK15i") // ["sony", "ericsson", "ck15i"]
//	uatoken.Words("CPU iPhone OS 5_1") // ["cpu", "iphone", "os", "5.1"]
func Words(fragment string) []string {
	s := fragment
	// Twice, so that 3_2_1 becomes 3.2.1.
	for range 2 {
		s = versionSepRegex.ReplaceAllString(s, "${1}.${2}")
	}
	for _, re := range boundaryRegexes {
		s = re.ReplaceAllString(s, "${1}_${2}")
	}

	pieces := strings.FieldsFunc(strings.ToLower(s), isWordSeparator)
	words := make([]string, 0, len(pieces))
	for _, p := range pieces {
		words = append(words, innerPunctRegex.ReplaceAllString(p, "${1}_${2}"))
	}
	return words
}

// Tokenize returns the words of a fragment interleaved with compound tokens
// joining each pair of adjacent words. The compound follows the word that
// starts it:
//
//	uatoken.Tokenize("SAMSUNG-GT-S5620-ORANGE")
//	// ["samsung", "samsung_gt", "gt", "gt_s5620", "s5620", "s5620_orange", "orange"]
//
// Version-shaped words never take part in a compound. When the previous word
// already contains an underscore only its last segment is joined, so
// compounds never span more than two words.
func Tokenize(fragment string) []string {
	words := Words(fragment)
	tokens := make([]string, 0, 2*len(words))

	var last string
	for _, w := range words {
		if last != "" && !IsVersion(last) && !IsVersion(w) {
			tokens = append(tokens, compound(lastSegment(last), w))
		}
		tokens = append(tokens, w)
		last = w
	}
	return tokens
}

// IsVersion reports whether s looks like a version number: dotted digits
// with an optional "v" prefix ("5.1", "v1.0.5") or "v" followed by digits
// ("v0100").
func IsVersion(s string) bool {
	return versionRegex.MatchString(s)
}

func isNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', '/', ':', ';':
		return true
	}
	return unicode.IsSpace(r)
}

func compound(a, b string) string {
	return a + "_" + b
}

func lastSegment(s string) string {
	if i := strings.LastIndexByte(s, '_'); i >= 0 && i < len(s)-1 {
		return s[i+1:]
	}
	return s
}
