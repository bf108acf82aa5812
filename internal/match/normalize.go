package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops separators, splitting camel case first so
// that "DenseVector", "dense-vector" and "dense_vector" share one form.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// Tokens splits an identifier into lowercase words on separators and
// lower-to-upper case transitions.
// Examples:
//   - "search_as_you_type" -> ["search", "as", "you", "type"]
//   - "ignoreAbove" -> ["ignore", "above"]
//   - "IPRange" -> ["ip", "range"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether a new word begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// end of an acronym: "IPRange" splits before 'R'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
