package uatoken

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	screenPartRegex   = regexp.MustCompile(`^\d{2,4}[xX*]\d{2,4}$`)
	localePartRegex   = regexp.MustCompile(`(?i)^([a-z]{2})(?:[-_]([a-z]{2,3}))?$`)
	securityPartRegex = regexp.MustCompile(`^[NUI]$`)
)

// Parse splits a User-Agent into parts and builds the token store.
// It never fails: malformed input produces fewer or rougher tokens.
//
//	tokens := uatoken.Parse(r.UserAgent())
//	if tokens.Has("android", ">=4.0") && tokens.Any("opera_mini", "uc_browser") {
//		// ...
//	}
func Parse(ua string) *Tokens {
	return defaultRules.Parse(ua)
}

// Parse is like the package-level Parse but uses this rule set for product
// tokens.
func (r *Rules) Parse(ua string) *Tokens {
	data := make(map[string]Value)
	var m metadata

	for _, part := range Split(ua) {
		if m.classify(part) {
			continue
		}
		for k, v := range r.ParseProduct(part) {
			// A version is never replaced; bare presence may be upgraded.
			if prev, ok := data[k]; !ok || (!prev.IsVersion() && v.IsVersion()) {
				data[k] = v
			}
		}
	}

	return &Tokens{
		tokens:       data,
		screen:       m.screen,
		security:     m.security,
		localization: m.locale,
	}
}

// metadata accumulates the screen, security and locale facets across parts.
type metadata struct {
	screen    *Screen
	security  Security
	locale    string
	localeRaw string
}

// classify records the part as a metadata facet and reports whether it was
// one. Matched parts are not parsed as products.
func (m *metadata) classify(part string) bool {
	switch {
	case screenPartRegex.MatchString(part):
		if s, ok := parseScreen(part); ok {
			m.screen = &s
		}
		return true

	case localePartRegex.MatchString(part):
		m.offerLocale(part)
		return true

	case securityPartRegex.MatchString(part):
		if m.security == "" {
			m.security = Security(part)
		}
		return true
	}
	return false
}

// offerLocale keeps the most specific candidate: one with a region beats one
// without, and at equal specificity the shorter raw match wins.
func (m *metadata) offerLocale(raw string) {
	sub := localePartRegex.FindStringSubmatch(raw)
	lang, region := strings.ToLower(sub[1]), strings.ToLower(sub[2])

	candidate := lang
	if region != "" {
		candidate = lang + "-" + region
	}

	if m.locale != "" {
		hadRegion := strings.Contains(m.locale, "-")
		hasRegion := region != ""
		switch {
		case hasRegion && !hadRegion:
		case hasRegion == hadRegion && len(raw) < len(m.localeRaw):
		default:
			return
		}
	}
	m.locale, m.localeRaw = candidate, raw
}

func parseScreen(part string) (Screen, bool) {
	i := strings.IndexAny(part, "xX*")
	if i < 0 {
		return Screen{}, false
	}
	w, err := strconv.Atoi(part[:i])
	if err != nil {
		return Screen{}, false
	}
	h, err := strconv.Atoi(part[i+1:])
	if err != nil {
		return Screen{}, false
	}
	return Screen{Width: w, Height: h}, true
}
