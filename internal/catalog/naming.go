package catalog

import (
	"go/token"
	"strings"
	"unicode"
)

var initialisms = map[string]string{
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"url":  "URL",
}

// GoName converts a snake_case wire name into an exported Go identifier.
//
//	ignore_above -> IgnoreAbove
//	ip_range     -> IPRange
func GoName(wire string) string {
	var sb strings.Builder

	for _, part := range strings.FieldsFunc(wire, func(r rune) bool { return r == '_' || r == '-' }) {
		if up, ok := initialisms[part]; ok {
			sb.WriteString(up)
			continue
		}

		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}

	return sb.String()
}

// LowerName converts an exported Go name into an unexported one, lowering a
// leading initialism as a whole.
//
//	IgnoreAbove -> ignoreAbove
//	IPRange     -> ipRange
func LowerName(name string) string {
	runes := []rune(name)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	// in "IPRange" the R starts the next word
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	out := string(runes)
	if token.IsKeyword(out) {
		out += "Value"
	}

	return out
}
