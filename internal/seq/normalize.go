package seq

import "strings"

// Normalize strips all whitespace, upper-cases, and for nucleotide
// sequences rewrites U to T (RNA to DNA). Normalize is idempotent.
func Normalize(text string, t Type) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if t == Nucleotide && c == 'U' {
			c = 'T'
		}
		b.WriteByte(c)
	}
	return b.String()
}
