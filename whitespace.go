package htmlmin

import "strings"

// isHTMLSpace reports whether r is one of the five HTML whitespace
// characters (spec §4.1.2: "HT | LF | FF | CR | SP").
func isHTMLSpace(r byte) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// isAllWhitespace reports whether s consists entirely of HTML whitespace.
func isAllWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHTMLSpace(s[i]) {
			return false
		}
	}
	return true
}

// collapseWhitespaceRuns replaces every maximal run of HTML whitespace with a
// single space character.
func collapseWhitespaceRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isHTMLSpace(c) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(c)
	}
	return b.String()
}

// trimHTMLSpace trims leading and/or trailing HTML whitespace.
func trimHTMLSpace(s string, left, right bool) string {
	start, end := 0, len(s)
	if left {
		for start < end && isHTMLSpace(s[start]) {
			start++
		}
	}
	if right {
		for end > start && isHTMLSpace(s[end-1]) {
			end--
		}
	}
	return s[start:end]
}

// stripAllWhitespace removes every HTML whitespace character from s.
func stripAllWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isHTMLSpace(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// splitHTMLWhitespace splits s on runs of HTML whitespace, discarding empty
// fields (equivalent to strings.Fields but scoped to the HTML whitespace set).
func splitHTMLWhitespace(s string) []string {
	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isHTMLSpace(s[i]) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
