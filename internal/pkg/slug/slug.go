package slug

import "strings"

const MaxLength = 100

// Fallback derives a URL-safe slug from a free-text product name when the
// static catalog mapping has no entry. Deterministic and total: any input
// string yields a slug, possibly empty once every disallowed rune is gone.
func Fallback(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	parts := strings.Fields(b.String())
	s := strings.Join(parts, "-")

	if len(s) > MaxLength {
		s = s[:MaxLength]
	}
	return s
}
