package uatoken

import "strings"

// ParseProduct extracts name/version pairs from a single product token
// using the default rules.
//
//	uatoken.ParseProduct("Treo800w/v0100")
//	// {"treo": "v0100", "treo_800w": "v0100", "800w": "v0100"}
//
//	uatoken.ParseProduct("Vodafone/1.0/LG-KU990i/V10c")
//	// {"vodafone": "1.0", "lg": "v10c", "lg_ku990i": "v10c", "ku990i": "v10c"}
func ParseProduct(part string) map[string]Value {
	return defaultRules.ParseProduct(part)
}

// ParseProduct extracts name/version pairs from a single product token.
//
// The part is split on "/". Words collected from each element are assigned
// the next version that follows them: a version-shaped word inside an
// element, or the whole final element verbatim. Words with no version are
// recorded as present.
func (r *Rules) ParseProduct(part string) map[string]Value {
	elems := splitProduct(part)
	out := make(map[string]Value)

	var p productState
	for i, elem := range elems {
		if len(elems) > 1 && i == len(elems)-1 {
			// Only taken when nothing is pending. "Opera Mini/3.1.9427/1724"
			// keeps 3.1.9427.
			if !p.hasVersion {
				p.version, p.hasVersion = elem, true
			}
			break
		}
		if p.hasVersion {
			p.flush(out)
		}
		r.collect(&p, elem)
	}
	p.flush(out)

	return out
}

type productState struct {
	buffer     []string
	version    string
	hasVersion bool
}

// flush assigns the pending version to every buffered token. A token that
// already carries a version keeps it.
func (p *productState) flush(out map[string]Value) {
	v := Present()
	if p.hasVersion {
		v = Versioned(normalizeVersion(p.version))
	}
	for _, t := range p.buffer {
		prev, ok := out[t]
		if !ok || (!prev.IsVersion() && v.IsVersion()) {
			out[t] = v
		}
	}
	p.buffer = p.buffer[:0]
	p.version, p.hasVersion = "", false
}

// collect runs one slash-delimited element through the word tokenizer and
// the rule set, buffering tokens and capturing the first version.
func (r *Rules) collect(p *productState, elem string) {
	var last string
	hasLast := false

	for _, w := range Words(elem) {
		t := r.Canonical(w)
		if r.tooLong(t) {
			continue
		}
		if !p.hasVersion && IsVersion(t) {
			p.version, p.hasVersion = t, true
			continue
		}

		if hasLast && !IsVersion(last) && !IsVersion(t) {
			merged := compound(last, t)
			if c, ok := r.canonical[merged]; ok {
				// "black" + "berry" collapses into "blackberry".
				t = c
				if n := len(p.buffer); n > 0 && p.buffer[n-1] == last {
					p.buffer = p.buffer[:n-1]
				}
			} else {
				p.buffer = append(p.buffer, merged)
			}
		}
		last, hasLast = t, true

		if r.keep(t) {
			p.buffer = append(p.buffer, t)
		}
	}
}

// splitProduct splits on "/" and drops trailing empty elements, so that
// "Foo/1.0/" has the same shape as "Foo/1.0".
func splitProduct(part string) []string {
	elems := strings.Split(part, "/")
	for len(elems) > 0 && elems[len(elems)-1] == "" {
		elems = elems[:len(elems)-1]
	}
	return elems
}

func normalizeVersion(v string) string {
	return strings.ToLower(strings.TrimSuffix(v, "+"))
}
