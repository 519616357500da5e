package extract

import "strings"

// Matcher locates field values in normalized report text using the ordered
// alternatives of a Library. Matching is first-match-wins: the first
// pattern in a field's list that succeeds determines the result and later
// patterns are never consulted.
type Matcher struct {
	lib *Library
}

// NewMatcher creates a matcher over the given pattern library.
func NewMatcher(lib *Library) *Matcher {
	return &Matcher{lib: lib}
}

// Match returns the value captured by the first matching pattern for the
// field, trimmed of surrounding whitespace but otherwise verbatim, so
// numeric formatting and unit suffixes survive. A nil result means the
// field is absent from the text; placeholder substitution is the
// exporter's concern, not the matcher's.
func (m *Matcher) Match(text string, f Field) *string {
	for _, p := range m.lib.Patterns(f) {
		if p.notPreceded == nil {
			if sub := p.re.FindStringSubmatch(text); sub != nil {
				v := strings.TrimSpace(sub[1])
				return &v
			}
			continue
		}

		// Guarded pattern: skip occurrences whose preceding text ends
		// with the guard expression.
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if p.notPreceded.MatchString(text[:loc[0]]) {
				continue
			}
			v := strings.TrimSpace(text[loc[2]:loc[3]])
			return &v
		}
	}
	return nil
}
